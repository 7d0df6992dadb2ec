package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/httpresp"
	ucAuth "github.com/Ka-few/Beauty-parlor-app/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
	me       *ucAuth.CurrentCustomer
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	me *ucAuth.CurrentCustomer,
) *AuthHandler {
	return &AuthHandler{register: register, login: login, me: me}
}

// --------- Requests ---------

// Required fields are checked by the use case so the caller gets a
// specific message.
type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AuthHandler) Me(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	out, err := h.me.Execute(c.Request.Context(), customerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"customer": out})
}

package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", Validation("Name is required"), http.StatusBadRequest, `{"error":"Name is required"}`},
		{"conflict", Conflict("Phone already registered"), http.StatusBadRequest, `{"error":"Phone already registered"}`},
		{"unauthenticated", Unauthenticated("Invalid credentials"), http.StatusUnauthorized, `{"error":"Invalid credentials"}`},
		{"forbidden", Forbidden("Admin access required"), http.StatusForbidden, `{"error":"Admin access required"}`},
		{"not found", NotFoundErr("Service not found"), http.StatusNotFound, `{"error":"Service not found"}`},
		{"wrapped", fmt.Errorf("ctx: %w", NotFoundErr("Stylist not found")), http.StatusNotFound, `{"error":"Stylist not found"}`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Forbidden("nope"))
	assert.True(t, IsBusiness(err, KindForbidden))
	assert.False(t, IsBusiness(err, KindNotFound))
	assert.False(t, IsBusiness(errors.New("plain"), KindForbidden))
}

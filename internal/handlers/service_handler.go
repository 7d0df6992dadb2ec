package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/httpresp"
	ucCatalog "github.com/Ka-few/Beauty-parlor-app/internal/usecase/catalog"
)

// maxImageBytes bounds an uploaded service image.
const maxImageBytes = 10 << 20

type ServiceHandler struct {
	list        *ucCatalog.ListServices
	get         *ucCatalog.GetService
	create      *ucCatalog.CreateService
	update      *ucCatalog.UpdateService
	remove      *ucCatalog.DeleteService
	attachImage *ucCatalog.AttachServiceImage
}

func NewServiceHandler(
	list *ucCatalog.ListServices,
	get *ucCatalog.GetService,
	create *ucCatalog.CreateService,
	update *ucCatalog.UpdateService,
	remove *ucCatalog.DeleteService,
	attachImage *ucCatalog.AttachServiceImage,
) *ServiceHandler {
	return &ServiceHandler{
		list:        list,
		get:         get,
		create:      create,
		update:      update,
		remove:      remove,
		attachImage: attachImage,
	}
}

// --------- Requests ---------

// Price is decoded loosely; numeric strings are accepted.
type CreateServiceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	ImageURL    string `json:"image_url"`
}

type UpdateServiceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
	ImageURL    *string `json:"image_url"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Service not found")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucCatalog.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Service not found")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.update.Execute(c.Request.Context(), ucCatalog.UpdateServiceInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "Service not found")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), customerID, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// UploadImage expects a multipart form with the file in "image".
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c, "id", "Service not found")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes)
	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "Image file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "Image file is required")
		return
	}
	defer f.Close()

	out, err := h.attachImage.Execute(c.Request.Context(), ucCatalog.AttachServiceImageInput{
		ServiceID: id,
		Image:     f,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

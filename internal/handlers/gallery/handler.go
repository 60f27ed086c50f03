package gallery

import (
	"net/http"

	"saylamc/infras/otel"
	"saylamc/internal/domains/gallery/model/dto"
	"saylamc/internal/domains/gallery/service"
	"saylamc/shared"
	"saylamc/shared/constant"
	"saylamc/shared/failure"
	"saylamc/shared/validator"
	"saylamc/transport/http/middleware"
	"saylamc/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Gallery
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Gallery, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGalleryImages)
		routerGroup.Get("/{id}", handler.GetGalleryImage)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Post("/", handler.CreateGalleryImage)
			authed.Post("/upload", handler.UploadImage)
			authed.Delete("/{id}", handler.DeleteGalleryImage)
		})
	})
}

// GetGalleryImages retrieves all gallery images.
// @Summary Get all gallery images
// @Description Retrieve all gallery images, optionally filtered by category.
// @Tags Gallery
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[[]dto.GalleryImageResponse]
// @Failure 500 {object} response.Error
// @Router /api/gallery [get]
func (handler *Handler) GetGalleryImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleryImages")
	defer scope.End()

	category := r.URL.Query().Get(constant.RequestParamCategory)

	images, err := handler.service.GetAll(ctx, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery images")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, images)
}

// GetGalleryImage retrieves a single gallery image by id.
// @Summary Get a gallery image
// @Description Retrieve one gallery image by numeric id.
// @Tags Gallery
// @Produce json
// @Param id path int true "Gallery image ID"
// @Success 200 {object} response.Data[dto.GalleryImageResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gallery/{id} [get]
func (handler *Handler) GetGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleryImage")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid gallery image id"))

		return
	}

	image, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, image)
}

// CreateGalleryImage creates a new gallery image.
// @Summary Create a gallery image
// @Description Create a new gallery image entry.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryImageRequest true "Create Gallery Image Request"
// @Success 201 {object} response.Data[dto.GalleryImageResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gallery [post]
// @Security BearerAuth
func (handler *Handler) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGalleryImage")
	defer scope.End()

	req := dto.CreateGalleryImageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	image, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gallery image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery image created successfully")

	response.WithJSON(w, http.StatusCreated, image)
}

// UploadImage handles image upload to S3.
// @Summary Upload an image to S3
// @Description Upload an image file to S3 and return the URL.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file to upload"
// @Success 200 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gallery/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Image uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteGalleryImage deletes a gallery image by id.
// @Summary Delete a gallery image
// @Description Delete a gallery image using its numeric id.
// @Tags Gallery
// @Produce json
// @Param id path int true "Gallery image ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gallery/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGalleryImage")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid gallery image id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery image deleted successfully")

	response.WithMessage(w, http.StatusOK, "Gallery image deleted successfully")
}

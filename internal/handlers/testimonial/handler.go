package testimonial

import (
	"net/http"

	"saylamc/infras/otel"
	"saylamc/internal/domains/testimonial/model/dto"
	"saylamc/internal/domains/testimonial/service"
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
	service    service.Testimonial
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Testimonial, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/testimonials", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTestimonials)
		routerGroup.Get("/featured", handler.GetFeaturedTestimonials)
		routerGroup.Get("/{id}", handler.GetTestimonial)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Post("/", handler.CreateTestimonial)
			authed.Put("/{id}", handler.UpdateTestimonial)
			authed.Delete("/{id}", handler.DeleteTestimonial)
		})
	})
}

// GetTestimonials retrieves all testimonials.
// @Summary Get all testimonials
// @Description Retrieve all testimonials ordered by display order.
// @Tags Testimonial
// @Produce json
// @Success 200 {object} response.Data[[]dto.TestimonialResponse]
// @Failure 500 {object} response.Error
// @Router /api/testimonials [get]
func (handler *Handler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonials")
	defer scope.End()

	testimonials, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, testimonials)
}

// GetFeaturedTestimonials retrieves the featured testimonials.
// @Summary Get featured testimonials
// @Description Retrieve testimonials flagged as featured.
// @Tags Testimonial
// @Produce json
// @Success 200 {object} response.Data[[]dto.TestimonialResponse]
// @Failure 500 {object} response.Error
// @Router /api/testimonials/featured [get]
func (handler *Handler) GetFeaturedTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedTestimonials")
	defer scope.End()

	testimonials, err := handler.service.GetFeatured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured testimonials")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, testimonials)
}

// GetTestimonial retrieves a single testimonial by id.
// @Summary Get a testimonial
// @Description Retrieve one testimonial by numeric id.
// @Tags Testimonial
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} response.Data[dto.TestimonialResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/testimonials/{id} [get]
func (handler *Handler) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonial")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid testimonial id"))

		return
	}

	testimonial, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonial")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, testimonial)
}

// CreateTestimonial creates a new testimonial.
// @Summary Create a testimonial
// @Description Create a new testimonial entry.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param request body dto.CreateTestimonialRequest true "Create Testimonial Request"
// @Success 201 {object} response.Data[dto.TestimonialResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/testimonials [post]
// @Security BearerAuth
func (handler *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTestimonial")
	defer scope.End()

	req := dto.CreateTestimonialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	testimonial, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create testimonial")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonial created successfully")

	response.WithJSON(w, http.StatusCreated, testimonial)
}

// UpdateTestimonial overwrites an existing testimonial.
// @Summary Update a testimonial
// @Description Overwrite the editable columns of an existing testimonial.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path int true "Testimonial ID"
// @Param request body dto.UpdateTestimonialRequest true "Update Testimonial Request"
// @Success 200 {object} response.Data[dto.TestimonialResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/testimonials/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTestimonial")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid testimonial id"))

		return
	}

	req := dto.UpdateTestimonialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	testimonial, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update testimonial")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonial updated successfully")

	response.WithJSON(w, http.StatusOK, testimonial)
}

// DeleteTestimonial deletes a testimonial by id.
// @Summary Delete a testimonial
// @Description Delete a testimonial using its numeric id.
// @Tags Testimonial
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/testimonials/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTestimonial")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid testimonial id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete testimonial")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonial deleted successfully")

	response.WithMessage(w, http.StatusOK, "Testimonial deleted successfully")
}

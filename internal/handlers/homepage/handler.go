package homepage

import (
	"net/http"

	"saylamc/infras/otel"
	"saylamc/internal/domains/homepage/model/dto"
	"saylamc/internal/domains/homepage/service"
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
	service    service.HomepageSection
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.HomepageSection, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/homepage-sections", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSections)
		routerGroup.Get("/visible", handler.GetVisibleSections)
		routerGroup.Get("/{id}", handler.GetSection)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Post("/", handler.CreateSection)
			authed.Put("/reorder", handler.ReorderSections)
			authed.Put("/{id}", handler.UpdateSection)
			authed.Delete("/{id}", handler.DeleteSection)
		})
	})
}

// GetSections retrieves all homepage sections.
// @Summary Get all homepage sections
// @Description Retrieve all homepage sections ordered by section order.
// @Tags Homepage
// @Produce json
// @Success 200 {object} response.Data[[]dto.HomepageSectionResponse]
// @Failure 500 {object} response.Error
// @Router /api/homepage-sections [get]
func (handler *Handler) GetSections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSections")
	defer scope.End()

	sections, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get homepage sections")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sections)
}

// GetVisibleSections retrieves the visible homepage sections.
// @Summary Get visible homepage sections
// @Description Retrieve homepage sections flagged as visible.
// @Tags Homepage
// @Produce json
// @Success 200 {object} response.Data[[]dto.HomepageSectionResponse]
// @Failure 500 {object} response.Error
// @Router /api/homepage-sections/visible [get]
func (handler *Handler) GetVisibleSections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisibleSections")
	defer scope.End()

	sections, err := handler.service.GetVisible(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visible homepage sections")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sections)
}

// GetSection retrieves a single homepage section by id.
// @Summary Get a homepage section
// @Description Retrieve one homepage section by numeric id.
// @Tags Homepage
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} response.Data[dto.HomepageSectionResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/homepage-sections/{id} [get]
func (handler *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSection")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid section id"))

		return
	}

	section, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get homepage section")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, section)
}

// CreateSection creates a new homepage section.
// @Summary Create a homepage section
// @Description Create a new homepage section entry.
// @Tags Homepage
// @Accept json
// @Produce json
// @Param request body dto.CreateHomepageSectionRequest true "Create Section Request"
// @Success 201 {object} response.Data[dto.HomepageSectionResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/homepage-sections [post]
// @Security BearerAuth
func (handler *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSection")
	defer scope.End()

	req := dto.CreateHomepageSectionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	section, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create homepage section")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Homepage section created successfully")

	response.WithJSON(w, http.StatusCreated, section)
}

// ReorderSections applies a new ordering to the given sections.
// @Summary Reorder homepage sections
// @Description Apply new section orders atomically across the given sections.
// @Tags Homepage
// @Accept json
// @Produce json
// @Param request body dto.ReorderSectionsRequest true "Reorder Sections Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/homepage-sections/reorder [put]
// @Security BearerAuth
func (handler *Handler) ReorderSections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderSections")
	defer scope.End()

	req := dto.ReorderSectionsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reorder(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder homepage sections")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Homepage sections reordered successfully")

	response.WithMessage(w, http.StatusOK, "Sections reordered successfully")
}

// UpdateSection overwrites an existing homepage section.
// @Summary Update a homepage section
// @Description Overwrite the editable columns of an existing homepage section.
// @Tags Homepage
// @Accept json
// @Produce json
// @Param id path int true "Section ID"
// @Param request body dto.UpdateHomepageSectionRequest true "Update Section Request"
// @Success 200 {object} response.Data[dto.HomepageSectionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/homepage-sections/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSection")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid section id"))

		return
	}

	req := dto.UpdateHomepageSectionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	section, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update homepage section")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Homepage section updated successfully")

	response.WithJSON(w, http.StatusOK, section)
}

// DeleteSection deletes a homepage section by id.
// @Summary Delete a homepage section
// @Description Delete a homepage section using its numeric id.
// @Tags Homepage
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/homepage-sections/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSection")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid section id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete homepage section")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Homepage section deleted successfully")

	response.WithMessage(w, http.StatusOK, "Homepage section deleted successfully")
}

package portfolio

import (
	"net/http"

	"saylamc/infras/otel"
	"saylamc/internal/domains/portfolio/model/dto"
	"saylamc/internal/domains/portfolio/service"
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
	service    service.Portfolio
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Portfolio, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/portfolio", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPortfolioItems)
		routerGroup.Get("/featured", handler.GetFeaturedPortfolioItems)
		routerGroup.Get("/{id}", handler.GetPortfolioItem)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Post("/", handler.CreatePortfolioItem)
			authed.Put("/{id}", handler.UpdatePortfolioItem)
			authed.Delete("/{id}", handler.DeletePortfolioItem)
		})
	})
}

// GetPortfolioItems retrieves all portfolio items.
// @Summary Get all portfolio items
// @Description Retrieve all portfolio items ordered by display order.
// @Tags Portfolio
// @Produce json
// @Success 200 {object} response.Data[[]dto.PortfolioResponse]
// @Failure 500 {object} response.Error
// @Router /api/portfolio [get]
func (handler *Handler) GetPortfolioItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPortfolioItems")
	defer scope.End()

	items, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get portfolio items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetFeaturedPortfolioItems retrieves the featured portfolio items.
// @Summary Get featured portfolio items
// @Description Retrieve portfolio items flagged as featured.
// @Tags Portfolio
// @Produce json
// @Success 200 {object} response.Data[[]dto.PortfolioResponse]
// @Failure 500 {object} response.Error
// @Router /api/portfolio/featured [get]
func (handler *Handler) GetFeaturedPortfolioItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedPortfolioItems")
	defer scope.End()

	items, err := handler.service.GetFeatured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured portfolio items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetPortfolioItem retrieves a single portfolio item by id or slug.
// @Summary Get a portfolio item
// @Description Retrieve one portfolio item by numeric id or slug.
// @Tags Portfolio
// @Produce json
// @Param id path string true "Portfolio item ID or slug"
// @Success 200 {object} response.Data[dto.PortfolioResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/portfolio/{id} [get]
func (handler *Handler) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPortfolioItem")
	defer scope.End()

	identifier := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, identifier)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get portfolio item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// CreatePortfolioItem creates a new portfolio item.
// @Summary Create a portfolio item
// @Description Create a new portfolio item entry.
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param request body dto.CreatePortfolioRequest true "Create Portfolio item Request"
// @Success 201 {object} response.Data[dto.PortfolioResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/portfolio [post]
// @Security BearerAuth
func (handler *Handler) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePortfolioItem")
	defer scope.End()

	req := dto.CreatePortfolioRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create portfolio item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Portfolio item created successfully")

	response.WithJSON(w, http.StatusCreated, item)
}

// UpdatePortfolioItem overwrites an existing portfolio item.
// @Summary Update a portfolio item
// @Description Overwrite the editable columns of an existing portfolio item.
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param id path int true "Portfolio item ID"
// @Param request body dto.UpdatePortfolioRequest true "Update Portfolio item Request"
// @Success 200 {object} response.Data[dto.PortfolioResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/portfolio/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePortfolioItem")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid portfolio id"))

		return
	}

	req := dto.UpdatePortfolioRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update portfolio item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Portfolio item updated successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// DeletePortfolioItem deletes a portfolio item by id.
// @Summary Delete a portfolio item
// @Description Delete a portfolio item using its numeric id.
// @Tags Portfolio
// @Produce json
// @Param id path int true "Portfolio item ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/portfolio/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePortfolioItem")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid portfolio id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete portfolio item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Portfolio item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Portfolio item deleted successfully")
}

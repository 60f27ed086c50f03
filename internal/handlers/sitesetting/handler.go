package sitesetting

import (
	"net/http"

	"saylamc/infras/otel"
	"saylamc/internal/domains/sitesetting/model/dto"
	"saylamc/internal/domains/sitesetting/service"
	"saylamc/shared/constant"
	"saylamc/shared/validator"
	"saylamc/transport/http/middleware"
	"saylamc/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.SiteSetting
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.SiteSetting, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/site-settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Put("/", handler.UpsertSettings)
		})
	})
}

// GetSettings retrieves the site settings.
// @Summary Get site settings
// @Description Retrieve the single site settings record. Returns an empty record when none exists yet.
// @Tags Site Settings
// @Produce json
// @Success 200 {object} response.Data[dto.SiteSettingResponse]
// @Failure 500 {object} response.Error
// @Router /api/site-settings [get]
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get site settings")

		response.WithError(w, err)

		return
	}

	// No row yet: the public site gets an empty object, not a zero-filled one.
	if settings.ID == 0 {
		response.WithJSON(w, http.StatusOK, struct{}{})

		return
	}

	response.WithJSON(w, http.StatusOK, settings)
}

// UpsertSettings creates or replaces the site settings.
// @Summary Update site settings
// @Description Create the site settings record on first use, otherwise overwrite it. Always idempotent.
// @Tags Site Settings
// @Accept json
// @Produce json
// @Param request body dto.UpsertSiteSettingRequest true "Upsert Site Settings Request"
// @Success 200 {object} response.Data[dto.SiteSettingResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/site-settings [put]
// @Security BearerAuth
func (handler *Handler) UpsertSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertSettings")
	defer scope.End()

	req := dto.UpsertSiteSettingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	settings, err := handler.service.Upsert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert site settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Site settings saved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

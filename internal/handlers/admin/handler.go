package admin

import (
	"net/http"

	"saylamc/infras/otel"
	authDto "saylamc/internal/domains/auth/model/dto"
	authService "saylamc/internal/domains/auth/service"
	dashboardService "saylamc/internal/domains/dashboard/service"
	"saylamc/shared/constant"
	"saylamc/shared/failure"
	"saylamc/shared/validator"
	"saylamc/transport/http/middleware"
	"saylamc/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	auth       authService.Auth
	dashboard  dashboardService.Dashboard
	middleware middleware.Auth
	otel       otel.Otel
}

func New(auth authService.Auth, dashboard dashboardService.Dashboard, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		auth:       auth,
		dashboard:  dashboard,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/refresh", handler.Refresh)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Get("/me", handler.Me)
			authed.Get("/stats", handler.Stats)
			authed.Put("/change-password", handler.ChangePassword)
		})
	})
}

// principal pulls the authenticated user id injected by the auth middleware.
func principal(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(constant.ContextKeyUserID).(int64)

	return userID, ok && userID != 0
}

// Login authenticates an admin user.
// @Summary Admin login
// @Description Authenticate with email and password, returning a token pair.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := authDto.LoginRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.auth.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to login")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin user logged in")

	response.WithPayload(w, http.StatusOK, res)
}

// Register creates a new admin user.
// @Summary Admin register
// @Description Create a new admin account. Fails when the username or email is taken.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.AdminUserResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := authDto.RegisterRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.auth.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register admin user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin user registered")

	response.WithJSON(w, http.StatusCreated, res)
}

// Refresh exchanges a refresh token for a new token pair.
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a fresh access and refresh token pair.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/admin/refresh [post]
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	req := authDto.RefreshTokenRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.auth.Refresh(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to refresh tokens")

		response.WithError(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, res)
}

// Me returns the authenticated admin user.
// @Summary Get current admin user
// @Description Resolve the bearer token into the admin user it belongs to.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.AdminUserResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	userID, ok := principal(r)
	if !ok {
		response.WithError(w, failure.Unauthorized("Invalid token claims"))

		return
	}

	res, err := handler.auth.Me(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current admin user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Stats returns dashboard statistics.
// @Summary Get dashboard stats
// @Description Row counts per content type plus the most recent bookings.
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Stats")
	defer scope.End()

	res, err := handler.dashboard.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, res)
}

// ChangePassword updates the authenticated admin user's password.
// @Summary Change password
// @Description Verify the current password and replace it with a new one.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/admin/change-password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	userID, ok := principal(r)
	if !ok {
		response.WithError(w, failure.Unauthorized("Invalid token claims"))

		return
	}

	req := authDto.ChangePasswordRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.auth.ChangePassword(ctx, userID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin user changed password")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}

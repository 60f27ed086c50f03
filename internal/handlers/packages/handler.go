package packages

import (
	"net/http"

	"saylamc/infras/otel"
	"saylamc/internal/domains/packages/model/dto"
	"saylamc/internal/domains/packages/service"
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
	service    service.Package
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Package, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Get("/featured", handler.GetFeaturedPackages)
		routerGroup.Get("/{id}", handler.GetPackage)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Post("/", handler.CreatePackage)
			authed.Put("/{id}", handler.UpdatePackage)
			authed.Delete("/{id}", handler.DeletePackage)
		})
	})
}

// GetPackages retrieves all packages.
// @Summary Get all packages
// @Description Retrieve all packages ordered by display order.
// @Tags Package
// @Produce json
// @Success 200 {object} response.Data[[]dto.PackageResponse]
// @Failure 500 {object} response.Error
// @Router /api/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	packages, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, packages)
}

// GetFeaturedPackages retrieves the featured packages.
// @Summary Get featured packages
// @Description Retrieve packages flagged as featured.
// @Tags Package
// @Produce json
// @Success 200 {object} response.Data[[]dto.PackageResponse]
// @Failure 500 {object} response.Error
// @Router /api/packages/featured [get]
func (handler *Handler) GetFeaturedPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedPackages")
	defer scope.End()

	packages, err := handler.service.GetFeatured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, packages)
}

// GetPackage retrieves a single package by id or slug.
// @Summary Get a package
// @Description Retrieve one package by numeric id or slug.
// @Tags Package
// @Produce json
// @Param id path string true "Package ID or slug"
// @Success 200 {object} response.Data[dto.PackageResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/packages/{id} [get]
func (handler *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackage")
	defer scope.End()

	identifier := chi.URLParam(r, constant.RequestParamID)

	pkg, err := handler.service.Get(ctx, identifier)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pkg)
}

// CreatePackage creates a new package.
// @Summary Create a package
// @Description Create a new package entry.
// @Tags Package
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} response.Data[dto.PackageResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/packages [post]
// @Security BearerAuth
func (handler *Handler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	pkg, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package created successfully")

	response.WithJSON(w, http.StatusCreated, pkg)
}

// UpdatePackage overwrites an existing package.
// @Summary Update a package
// @Description Overwrite the editable columns of an existing package.
// @Tags Package
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Update Package Request"
// @Success 200 {object} response.Data[dto.PackageResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/packages/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackage")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid package id"))

		return
	}

	req := dto.UpdatePackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	pkg, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package updated successfully")

	response.WithJSON(w, http.StatusOK, pkg)
}

// DeletePackage deletes a package by id.
// @Summary Delete a package
// @Description Delete a package using its numeric id.
// @Tags Package
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/packages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePackage")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid package id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package deleted successfully")

	response.WithMessage(w, http.StatusOK, "Package deleted successfully")
}

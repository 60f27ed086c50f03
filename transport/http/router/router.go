package router

import (
	"net/http"

	"saylamc/internal/handlers/admin"
	"saylamc/internal/handlers/booking"
	"saylamc/internal/handlers/gallery"
	"saylamc/internal/handlers/homepage"
	"saylamc/internal/handlers/packages"
	"saylamc/internal/handlers/portfolio"
	"saylamc/internal/handlers/service"
	"saylamc/internal/handlers/sitesetting"
	"saylamc/internal/handlers/testimonial"
	"saylamc/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Admin       admin.Handler
	Service     service.Handler
	Package     packages.Handler
	Portfolio   portfolio.Handler
	Testimonial testimonial.Handler
	Gallery     gallery.Handler
	Homepage    homepage.Handler
	SiteSetting sitesetting.Handler
	Booking     booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/health", health)

		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Package.Router(routerGroup)
		r.DomainHandlers.Portfolio.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Homepage.Router(routerGroup)
		r.DomainHandlers.SiteSetting.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

type healthPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func health(w http.ResponseWriter, _ *http.Request) {
	response.WithPayload(w, http.StatusOK, healthPayload{
		Status:  "OK",
		Message: "Sayla MC API is running",
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

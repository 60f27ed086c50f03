package handler

import (
	"net/http"

	"saylamc/config"
	"saylamc/di"
	"saylamc/shared/logger"
)

// Handler is the serverless entrypoint. Each invocation builds the service
// graph and delegates to the configured mux.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Adaptor()(w, r)
}

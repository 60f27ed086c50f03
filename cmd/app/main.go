package main

import (
	"saylamc/config"
	"saylamc/di"
	"saylamc/shared/logger"

	_ "saylamc/docs"
)

// @title Sayla MC API
// @version 1.0
// @description Company profile and booking API for Sayla MC.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

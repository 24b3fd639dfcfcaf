package main

import (
	"stayhub/config"
	"stayhub/di"
	"stayhub/shared/logger"
)

// @title StayHub API
// @version 1.0
// @description Multi-tenant hotel booking marketplace with availability, pricing and inventory reservation.
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

// Package main is the entry point for the yard-service application.
//
// @title           Yard Service API
// @version         1.0.0
// @description     API for resolving a container yard's stack topology into storage units.
//
//	This service pairs adjacent 40ft stacks into virtual units and places
//	containers into them from their coded yard locations.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/yard-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Resolution
// @tag.description Yard resolution operations
//
// @tag.name        Topology
// @tag.description Stack pairing topology probes
//
// @tag.name        Stack Layout
// @tag.description Stored yard layout management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/yard-service/docs" // swagger docs

	"github.com/guttosm/yard-service/config"
	"github.com/guttosm/yard-service/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; deployments set real environment variables.
	_ = godotenv.Load()

	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	err := server.Run()
	cleanup()
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

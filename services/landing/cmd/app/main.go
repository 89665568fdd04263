package main

import (
	"abq-api/pkg/config"
	app "abq-api/services/landing/internal/app"
)

// @title           ABQ Landing API
// @version         1.0
// @description     Public listing, blog and contact endpoints for the ABQ landing site, plus the admin catalog API.

// @contact.name   ABQ Engenharia
// @contact.email  contato@abq.local

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Admin tokens are signed with JWT_SECRET
	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}

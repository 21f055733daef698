package main

import (
	"social-vault/pkg/config"
	app "social-vault/services/content/internal/app"

	_ "social-vault/services/content/docs" // Swagger docs
)

// @title           Content Service API
// @version         1.0
// @description     Read-only feed of creator content. Items that are not free are returned locked, without media.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Optional. Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
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

package main

import (
	"log"

	_ "university_billing/docs"
	"university_billing/internal/adapter/http/routes"
	"university_billing/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           University Billing API
// @version         1.0
// @description     Inscription fees and student records, behind the API gateway.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	routes.Run(cfg)
}

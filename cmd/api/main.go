package main

import (
	_ "billing_saas/docs"
	"billing_saas/internal/adapter/http/routes"
	"billing_saas/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Invoice Document Service API
// @version         1.0
// @description     Billing aggregation and invoice PDF generation backed by DynamoDB and S3.

// @host localhost:8080

// @BasePath  /v1

func main() {
	logger.Setup()
	routes.Run()
}

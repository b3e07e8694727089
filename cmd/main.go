package main

import (
	_ "github.com/franciscosanchezn/meal-master-api/docs" // Import generated docs
	"github.com/franciscosanchezn/meal-master-api/internal/config"
	"github.com/franciscosanchezn/meal-master-api/internal/controllers"
	"github.com/franciscosanchezn/meal-master-api/internal/database"
	"github.com/franciscosanchezn/meal-master-api/internal/middleware"
	"github.com/franciscosanchezn/meal-master-api/internal/payments"
	"github.com/franciscosanchezn/meal-master-api/internal/server"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

// @title Meal Master API
// @version 1.0
// @description Meal ordering backend: menu, upcoming meals, reviews, likes, carts and membership checkout
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
// @description Session token set by POST /jwt
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	app := fx.New(
		fx.Provide(config.LoadConfig),
		server.Module,
		fx.NopLogger,
	)
	app.Run()
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and applies one level to every package logger
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := logLevel()
	log.SetLevel(level)
	config.SetLogLevel(level)
	database.SetLogLevel(level)
	services.SetLogLevel(level)
	payments.SetLogLevel(level)
	middleware.SetLogLevel(level)
	controllers.SetLogLevel(level)
	server.SetLogLevel(level)
}

// logLevel picks the level for APP_ENV. LOG_LEVEL wins when it is set and valid.
func logLevel() log.Level {
	level := log.InfoLevel
	switch config.GetEnvWithDefault("APP_ENV", "development") {
	case "development":
		level = log.DebugLevel
	case "production":
		level = log.ErrorLevel
	}
	if raw := config.GetEnvWithDefault("LOG_LEVEL", ""); raw != "" {
		parsed, err := log.ParseLevel(raw)
		if err != nil {
			log.Warnf("Invalid LOG_LEVEL %q, keeping %s", raw, level)
		} else {
			level = parsed
		}
	}
	return level
}

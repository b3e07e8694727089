package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/config"
	"github.com/franciscosanchezn/meal-master-api/internal/controllers"
	"github.com/franciscosanchezn/meal-master-api/internal/database"
	"github.com/franciscosanchezn/meal-master-api/internal/payments"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the server logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// DatabaseModule opens, migrates and seeds the store
var DatabaseModule = fx.Options(
	fx.Provide(database.NewDatabaseConfig, provideDB),
)

// ServiceModule provides the session handling, payment gateway and domain services
var ServiceModule = fx.Options(
	fx.Provide(
		provideSessionManager,
		provideCookiePolicy,
		provideGateway,
		services.NewMenuService,
		services.NewUpcomingMealService,
		services.NewReviewService,
		services.NewLikeService,
		services.NewCartService,
		services.NewPaymentService,
		services.NewUserService,
		services.NewMembershipService,
	),
)

// ControllerModule provides the HTTP handlers
var ControllerModule = fx.Options(
	fx.Provide(
		controllers.NewAuthController,
		controllers.NewMenuController,
		controllers.NewUpcomingMealController,
		controllers.NewReviewController,
		controllers.NewLikeController,
		controllers.NewCartController,
		controllers.NewPaymentController,
		controllers.NewUserController,
		controllers.NewMembershipController,
	),
)

// Module wires the whole API given a *config.Config
var Module = fx.Options(
	DatabaseModule,
	ServiceModule,
	ControllerModule,
	fx.Provide(NewRouter, NewHTTPServer),
	fx.Invoke(StartServer),
)

func provideDB(lc fx.Lifecycle, cfg database.DatabaseConfig) (*gorm.DB, error) {
	db, err := database.InitDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := database.SeedMemberships(context.Background(), db); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info("Closing database connection")
			return sqlDB.Close()
		},
	})
	return db, nil
}

func provideSessionManager(cfg *config.Config) *auth.SessionManager {
	return auth.NewSessionManager(cfg.JWTSecret)
}

func provideCookiePolicy(cfg *config.Config) auth.CookiePolicy {
	return auth.NewCookiePolicy(cfg.IsProduction())
}

func provideGateway(cfg *config.Config) payments.Gateway {
	return payments.NewStripeGateway(cfg.StripeSecretKey)
}

// NewHTTPServer binds the router to the configured address and timeouts
func NewHTTPServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// StartServer serves HTTP for the lifetime of the application
func StartServer(lc fx.Lifecycle, srv *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
			go func() {
				log.Infof("Starting server on %s", srv.Addr)
				if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.WithError(err).Error("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

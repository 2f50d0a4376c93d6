package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "wardrobe_catalog/docs"
	"wardrobe_catalog/internal/config"
	"wardrobe_catalog/internal/handlers"
	"wardrobe_catalog/internal/logger"
	"wardrobe_catalog/internal/repository"
	"wardrobe_catalog/internal/server"
	"wardrobe_catalog/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	configDir       = "configs"
	startupTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title                       Wardrobe Catalog API
// @version                     1.0
// @description                 Per-user clothing catalog: categories, seasons and items behind bearer tokens.
// @host                        localhost:5000
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml + WARDROBE_* env
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.New(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	if cfg.Auth.UsesDefaultSigningKey() {
		log.Warnw("auth.signing_key is the default placeholder; set WARDROBE_AUTH_SIGNING_KEY")
	}

	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// open store
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	repos, closeStore, err := repository.Open(ctx, cfg.Store)
	cancel()
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.Store.Driver, "err", err)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			log.Errorw("failed to close store", "driver", cfg.Store.Driver, "err", cerr)
		}
	}()
	log.Infow("store ready", "driver", cfg.Store.Driver)

	// wire dependencies
	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithAllowedOrigins(cfg.CORS.AllowedOrigins),
		handlers.WithFeedInterval(cfg.WS.DefaultInterval),
	)

	// start HTTP server
	srv := server.New(cfg.HTTP)
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pixel_portfolio/docs"
	"pixel_portfolio/internal/config"
	"pixel_portfolio/internal/handlers"
	"pixel_portfolio/internal/logger"
	"pixel_portfolio/internal/repository"
	"pixel_portfolio/internal/repository/db"
	"pixel_portfolio/internal/server"
	"pixel_portfolio/internal/service"
	"pixel_portfolio/internal/token"

	"github.com/gin-gonic/gin"
)

// @title                       Pixel World Portfolio API
// @version                     1.0.0
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env first so viper sees its values
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("error reading .env", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	docs.SwaggerInfo.Version = cfg.Version

	// open DB
	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	tokens, err := token.New([]byte(cfg.JWTSecret), token.WithTTL(cfg.TokenTTL))
	if err != nil {
		log.Fatalw("failed to init token codec", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithDebug(cfg.Debug),
		handlers.WithVersion(cfg.Version),
	)

	// start HTTP server
	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(srv, cfg.ShutdownTimeout, log)
}

// openDB opens the SQLite file and applies pending migrations.
func openDB(cfg config.Config, log *logger.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Infow("opening database", "path", cfg.DBPath)
	return db.Open(ctx, cfg.DBPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

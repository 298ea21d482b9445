package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/conf"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/router"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/cache"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/database"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
)

/**
 * @time: 2024/11/8 19:10
 * @file: bootstrap.go
 * @description: process startup and shutdown
 */

type App struct {
	HttpApp *fiber.App
	Logger  *zap.Logger
	AppConf conf.AppConfig
}

// InitAppFunc builds the App from the shared infrastructure, wire generates
// the implementation.
type InitAppFunc func(logger *zap.Logger, db database.IDatabase, cache cache.ICache, appConf conf.AppConfig) (*App, func(), error)

func NewApp(rt *router.Router, logger *zap.Logger, appConf conf.AppConfig) (*App, func(), error) {
	httpApp := rt.Router(logger)

	cleanup := func() {}

	app := &App{
		HttpApp: httpApp,
		Logger:  logger,
		AppConf: appConf,
	}
	return app, cleanup, nil
}

// Bootstrap loads config, brings up logging, Redis and the database, then
// hands them to initApp.
func Bootstrap(configFile string, initApp InitAppFunc) (*App, func(), error) {
	appConf := conf.NewConf(configFile)

	logger, err := log.NewLog(&appConf.Log)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := cache.NewRedis(appConf.Redis)
	if err != nil {
		return nil, nil, err
	}
	dbClient, err := database.NewDatabase(appConf.Database)
	if err != nil {
		return nil, nil, err
	}

	db := database.NewDatabaseAdapter(dbClient)
	redisCache := cache.NewRedisCache(redisClient)

	app, cleanup, err := initApp(logger, db, redisCache, appConf)
	if err != nil {
		return nil, nil, err
	}

	wrapped := func() {
		cleanup()
		_ = redisClient.Close()
		if sqlDB, err := dbClient.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return app, wrapped, nil
}

// Run starts the HTTP listener and blocks until a termination signal, then
// shuts down gracefully.
func Run(app *App, cleanup func()) {
	logger := app.Logger
	appConf := app.AppConf

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		addr := fmt.Sprintf("%s:%d", appConf.Http.Host, appConf.Http.Port)
		logger.Sugar().Infow("HTTP listener started", "address", addr)

		var err error
		if appConf.Http.TLS.CertFile != "" && appConf.Http.TLS.KeyFile != "" {
			err = app.HttpApp.ListenTLS(addr, appConf.Http.TLS.CertFile, appConf.Http.TLS.KeyFile)
		} else {
			err = app.HttpApp.Listen(addr)
		}
		if err != nil {
			logger.Sugar().Errorw("HTTP listener failed", "address", addr, "error", err)
		}
	}()

	sig := <-quit
	logger.Sugar().Infof("received signal: %v, shutting down gracefully", sig)

	shutdownTimeout := time.Duration(appConf.Http.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Sugar().Errorf("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server shut down gracefully")
	}

	cleanup()

	logger.Info("server shutdown complete")
}

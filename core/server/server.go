package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-scheduler-api/core/cache"
	"go-scheduler-api/core/config"
	"go-scheduler-api/core/database"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/core/middleware"
	"go-scheduler-api/core/queue"
	"go-scheduler-api/modules/container"
	"go-scheduler-api/modules/event"
	"go-scheduler-api/modules/host"
	"go-scheduler-api/modules/timeslot"
	tsservice "go-scheduler-api/modules/timeslot/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires the whole application together and blocks until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Logger.Level, cfg.Logger.Development)
	defer logger.Sync()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.SQLx().Close()

	redisClient, err := cache.InitRedis(cfg.Redis)
	if err != nil {
		return err
	}

	// Per-host reservation locks live in redis when it is configured so
	// multiple instances serialize against the same host. Without redis the
	// locks are in-process only.
	var locker tsservice.HostLocker
	if redisClient != nil {
		locker = tsservice.NewRedisHostLocker(redisClient)
	} else {
		locker = tsservice.NewLocalHostLocker()
		logger.Warn("Redis not configured, host locks are in-process only")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware(cfg)

	host.Init(e, &db, mw, cfg)
	timeslot.Init(e, &db, mw)
	event.Init(e, &db, mw, cfg, locker)
	container.Init(e, &db, mw)

	var asynqServer *asynq.Server
	if redisClient != nil {
		queue.InitClient(cfg.Redis)
		asynqServer = queue.NewServer(cfg.Redis, cfg.Queue)

		mux := asynq.NewServeMux()
		event.InitWorker(mux, &db, cfg, locker)

		go func() {
			if err := asynqServer.Run(mux); err != nil {
				logger.Error("Asynq server stopped", "error", err)
			}
		}()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
		}
	}()
	logger.Info("Server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if asynqServer != nil {
		asynqServer.Shutdown()
	}
	if client := queue.GetClient(); client != nil {
		_ = client.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	logger.Info("Server exited")
	return nil
}

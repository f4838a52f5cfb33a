package queue

import (
	"go-scheduler-api/core/config"
	"go-scheduler-api/core/logger"

	"github.com/hibiken/asynq"
)

var client *asynq.Client

// InitClient creates the shared asynq client used to enqueue background
// tasks. Returns nil when redis is not configured; enqueue call sites fall
// back to running the work inline.
func InitClient(cfg config.RedisConfig) *asynq.Client {
	if cfg.Addr == "" {
		logger.Info("Queue disabled, background tasks run inline")
		return nil
	}
	client = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	logger.Info("Queue client initialized", "addr", cfg.Addr)
	return client
}

// GetClient returns the shared asynq client, nil when the queue is disabled
func GetClient() *asynq.Client {
	return client
}

// NewServer builds the asynq worker server. The caller registers handlers on
// a ServeMux and runs it.
func NewServer(redisCfg config.RedisConfig, queueCfg config.QueueConfig) *asynq.Server {
	if redisCfg.Addr == "" {
		return nil
	}
	concurrency := queueCfg.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		},
		asynq.Config{
			Concurrency: concurrency,
			Logger:      asynqLogger{},
		},
	)
}

// asynqLogger routes asynq's internal logging through core/logger
type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug("asynq", "args", args) }
func (asynqLogger) Info(args ...any)  { logger.Info("asynq", "args", args) }
func (asynqLogger) Warn(args ...any)  { logger.Warn("asynq", "args", args) }
func (asynqLogger) Error(args ...any) { logger.Error("asynq", "args", args) }
func (asynqLogger) Fatal(args ...any) { logger.Error("asynq fatal", "args", args) }

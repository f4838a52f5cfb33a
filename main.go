package main

import (
	"go-scheduler-api/core/logger"
	"go-scheduler-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("Run server error", "error", err)
	}
}

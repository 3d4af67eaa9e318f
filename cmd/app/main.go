package main

import (
	"context"

	"adboard/config"
	"adboard/di"
	"adboard/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	worker := di.InitializeEventsWorker()
	worker.Start(context.Background())

	http := di.InitializeService()
	http.Serve()
}

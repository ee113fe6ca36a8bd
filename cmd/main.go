package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/careercrafter/backend/internal/app"
	"github.com/careercrafter/backend/internal/config"
	"github.com/careercrafter/backend/internal/logger"
	"github.com/careercrafter/backend/internal/metrics"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("can't create application: %v", err)
	}
	defer application.Close()

	log.Info("application pipeline ready")

	<-ctx.Done()

	log.Info("Shutting down services...")
}

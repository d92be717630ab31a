package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocsvlab/adapters/datareadiness"
	"gocsvlab/adapters/export"
	"gocsvlab/adapters/loader"
	"gocsvlab/internal"
	"gocsvlab/internal/config"
	"gocsvlab/internal/metrics"
	"gocsvlab/internal/session"
	"gocsvlab/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Logging.Level))
	internal.DefaultLogger = logger
	defer logger.Sync()

	gin.SetMode(appConfig.Server.GinMode)

	appMetrics := metrics.New()
	server := ui.NewServer(ui.Options{
		Store:    session.NewMemoryStore(appConfig.Sessions.Limit, appMetrics),
		Loader:   loader.NewDataReader(logger),
		Profiler: datareadiness.NewProfilerAdapter(),
		Exporters: export.NewRegistry(export.ReportOptions{
			TopValues: appConfig.Export.TopValues,
		}),
		Metrics:        appMetrics,
		Logger:         logger,
		MaxUploadBytes: appConfig.MaxUploadBytes(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(":" + appConfig.Server.Port)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("[Server] stopped: %v", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("[Server] received %s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("[Server] shutdown failed: %v", err)
		}
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"holidaze/config"
	"holidaze/di"
	"holidaze/util"
)

func main() {
	// .env is optional; real deployments pass the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	util.InitializeLogger(cfg.Env)
	defer util.SyncLogger()
	logger := util.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to build container: %v", err)
	}
	defer container.Close()

	logger.Info("warming venue catalog")
	if n, err := container.VenuesRefresherService.RefreshVenuesData(ctx); err != nil {
		logger.Warnf("initial catalog refresh failed: %v", err)
	} else {
		logger.Infof("catalog warmed with %d venues", n)
	}

	logger.Infof("starting periodic catalog refresh every %s", cfg.CatalogRefreshInterval)
	container.VenuesRefresherService.StartPeriodicJob(ctx, cfg.CatalogRefreshInterval)

	if err := container.HolidazeHttpServer.Run(ctx); err != nil {
		logger.Errorf("server stopped with error: %v", err)
	}
}

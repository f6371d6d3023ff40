package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/AbdulWasayUl/go-covid-map/internal/config"
	"github.com/AbdulWasayUl/go-covid-map/internal/effect"
	"github.com/AbdulWasayUl/go-covid-map/internal/logger"
	"github.com/AbdulWasayUl/go-covid-map/internal/maphost"
	"github.com/AbdulWasayUl/go-covid-map/internal/marker"
	"github.com/AbdulWasayUl/go-covid-map/internal/scheduler"
	"github.com/AbdulWasayUl/go-covid-map/services/stats"
	"github.com/gin-gonic/gin"
)

func main() {
	logger.Init()

	if err := run(context.Background()); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetLevel(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	statsSvc := stats.NewService(cfg)
	renderer := marker.NewRenderer(cfg.Locale, loc)
	mapEffect := effect.New(statsSvc, renderer.PointToLayer, *logger.Get())

	sch := scheduler.New()
	defer sch.Stop()

	host := maphost.New(cfg.Map, sch)
	host.OnReady(mapEffect.Run)

	gin.SetMode(gin.ReleaseMode)
	router := maphost.NewRouter(host)

	if err := host.Mount(ctx); err != nil {
		return err
	}

	return maphost.Serve(ctx, cfg.HTTPAddr, router)
}

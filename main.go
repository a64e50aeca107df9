package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/Balaji-vnls/VNLS-press/config"
	"github.com/Balaji-vnls/VNLS-press/di"
	"github.com/Balaji-vnls/VNLS-press/driver/press_db"
	"github.com/Balaji-vnls/VNLS-press/rest"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting ranking server")

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	ctx := context.Background()
	pool, err := press_db.InitDBPool(ctx, &cfg.Database)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"resto/cmd"
	httpadapter "resto/internal/adapters/in/http"
	"resto/internal/adapters/out/postgres/kitchenrepo"
	"resto/internal/adapters/out/postgres/menurepo"
	"resto/internal/adapters/out/postgres/orderrepo"
	"resto/internal/jobs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("service stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// Absent .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	config, err := cmd.GetConfig()
	if err != nil {
		return err
	}

	gormDB, err := gorm.Open(postgresdriver.Open(config.PostgresDSN()), &gorm.Config{
		// Maps driver duplicate-key errors to gorm.ErrDuplicatedKey so
		// repositories can classify put-if-absent conflicts.
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&kitchenrepo.KitchenDTO{},
		&menurepo.DishDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	root := cmd.NewCompositionRoot(config, gormDB, logger)
	defer root.Close()

	logger.InfoContext(context.Background(), "snapshot stream configured",
		"enabled", root.SnapshotStreamEnabled())

	jobManager := jobs.NewJobManager(root.CreateReconcileKitchenLoadCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateCreateKitchenCommandHandler(),
		root.CreateUpsertDishCommandHandler(),
		root.CreateRemoveDishCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateListKitchensQueryHandler(),
		root.CreateGetMenuQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	return e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
}

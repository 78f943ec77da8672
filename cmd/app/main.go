package main

import (
	"fmt"
	"log/slog"
	"os"

	"supplyline/cmd"
	serverhttp "supplyline/internal/adapters/in/http"
	"supplyline/internal/adapters/out/postgres"
	"supplyline/internal/adapters/out/postgres/deliveryrepo"
	"supplyline/internal/adapters/out/postgres/orderrepo"
	"supplyline/internal/adapters/out/postgres/productrepo"
	"supplyline/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	db, err := openDatabase(configs)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded, relying on environment", "error", err)
	}

	return cmd.Config{
		HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      envOrDefault("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSslMode:   envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		OverdueCron: envOrDefault("OVERDUE_CRON", "0 * * * *"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
		&postgres.CounterDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = serverhttp.NewCustomValidator()
	e.Use(middleware.Recover())

	server := serverhttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateAssignWorkerCommandHandler(),
		root.CreateUpdateDeliveryStatusCommandHandler(),
		root.CreateCompleteDeliveryCommandHandler(),
		root.CreateReportIssueCommandHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListWorkerDeliveriesQueryHandler(),
		root.CreateNotificationPublisher(),
		logger,
	)
	server.RegisterRoutes(e, serverhttp.BearerAuth([]byte(configs.JWTSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"procurement/cmd"
	"procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres/catalogrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateStampDeliveryCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &catalogrepo.CatalogProductDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repo := catalogrepo.NewGormCatalogRepository(db)
	if err := repo.Seed(context.Background(), cmd.DefaultCatalog()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := http.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateSubmitOrderCommandHandler(),
		root.CreateApproveOrderCommandHandler(),
		root.CreatePriceOrderCommandHandler(),
		root.CreateCompleteCheckingCommandHandler(),
		root.CreateFinalizeOrderCommandHandler(),
		root.CreateGetCatalogQueryHandler(),
		root.CreateGetAllOrdersQueryHandler(),
		root.CreateGetActiveOrdersQueryHandler(),
		root.CreateGetArchivedOrdersQueryHandler(),
		root.CreateGetCurrentOrderQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

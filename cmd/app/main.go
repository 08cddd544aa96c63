package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"tracker/cmd"
	"tracker/internal/adapters/out/postgres/associaterepo"
	"tracker/internal/adapters/out/postgres/shipmentrepo"
	"tracker/internal/adapters/out/pubsub"
	"tracker/internal/core/domain/model/shipment"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}
	defer app.Hub().Close()

	if configs.SimulatorEnabled {
		jobManager := app.CreateJobManager()
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		BaseFare:            goDotEnvFloat("BASE_FARE", shipment.DefaultBaseFare),
		PerKmRate:           goDotEnvFloat("PER_KM_RATE", shipment.DefaultPerKmRate),
		HubBufferSize:       goDotEnvInt("HUB_BUFFER_SIZE", pubsub.DefaultBufferSize),
		ServiceAreaWestLng:  goDotEnvFloat("SERVICE_AREA_WEST_LNG", cmd.DefaultServiceAreaWestLng),
		ServiceAreaSouthLat: goDotEnvFloat("SERVICE_AREA_SOUTH_LAT", cmd.DefaultServiceAreaSouthLat),
		ServiceAreaEastLng:  goDotEnvFloat("SERVICE_AREA_EAST_LNG", cmd.DefaultServiceAreaEastLng),
		ServiceAreaNorthLat: goDotEnvFloat("SERVICE_AREA_NORTH_LAT", cmd.DefaultServiceAreaNorthLat),
		SimulatorEnabled:    goDotEnvVariable("SIMULATOR_ENABLED") == "true",
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvFloat(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid value %q for %s: %v", raw, key, err)
	}
	return value
}

func goDotEnvInt(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value %q for %s: %v", raw, key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &associaterepo.AssociateDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	app.CreateHTTPServer().RegisterRoutes(e)
	e.GET("/ws", app.CreateWebSocketHandler().Handle)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

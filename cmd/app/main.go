package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"parcel/cmd"
	httpadapter "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/postgres/parcelrepo"
	"parcel/internal/adapters/out/postgres/refs"
	"parcel/internal/adapters/out/postgres/statusrepo"
	"parcel/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.StatusCache(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSigningKey: goDotEnvVariable("JWT_SIGNING_KEY"),
		JWTIssuer:     goDotEnvVariable("JWT_ISSUER"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.TimelineEntryDTO{},
		&statusrepo.StatusDTO{},
		&refs.UserDTO{},
		&refs.ShopDTO{},
		&refs.PickupAddressDTO{},
		&refs.DeliveryAreaDTO{},
		&refs.CategoryDTO{},
		&refs.PackageHandlerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := statusrepo.NewGormStatusRepository(gormDB).Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed status catalog: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	jwtService := httpadapter.NewJWTService(configs.JWTSigningKey, configs.JWTIssuer)
	server := httpadapter.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateAssignHandlerCommandHandler(),
		app.CreateReceiveParcelCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateCancelParcelCommandHandler(),
		app.CreateUpdateParcelCommandHandler(),
		app.CreateListParcelsQueryHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateGetTimelineQueryHandler(),
		app.CreateHandlerRepository(),
	)
	server.RegisterRoutes(e, jwtService)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

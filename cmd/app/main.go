package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout/cmd"
	httpadapter "checkout/internal/adapters/in/http"
	"checkout/internal/adapters/out/postgres/cartrepo"
	"checkout/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(appLogger)

	if err := createDatabaseIfNotExists(configs); err != nil {
		log.Fatalf("Error creating database: %v", err)
	}

	gormDB := mustGormOpen(configs.DSN())
	mustAutoMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, appLogger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err := startWebServer(ctx, app, configs.HTTPPort, appLogger); err != nil {
		appLogger.Error("Web server stopped", "error", err)
	}
}

// createDatabaseIfNotExists connects to the maintenance database and creates
// the service database on first start.
func createDatabaseIfNotExists(configs cmd.Config) error {
	db, err := sql.Open("postgres", configs.MaintenanceDSN())
	if err != nil {
		return fmt.Errorf("open maintenance connection: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %s: %w", configs.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err := db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(configs.DBName)); err != nil {
		return fmt.Errorf("create database %s: %w", configs.DBName, err)
	}
	return nil
}

func mustGormOpen(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustAutoMigrate(gormDB *gorm.DB) {
	if err := gormDB.AutoMigrate(&cartrepo.CartDTO{}, &cartrepo.DeliveryModeDTO{}); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, appLogger *slog.Logger) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	validator, err := httpadapter.OpenAPIValidator(swagger)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(httpadapter.RequestLogger(appLogger))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if err := httpadapter.RegisterSwagger(e, swagger); err != nil {
		return err
	}

	servers.RegisterHandlers(e, app.CreateServer())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

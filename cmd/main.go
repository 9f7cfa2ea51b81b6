package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/pickup-point-service/docs"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/analytics"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/app"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/config"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/handler"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/postgres"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/repo"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/service"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/cache"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Pickup Point Service API
// @version         1.0
// @description     Документация HTTP API выбора пункта самовывоза
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if conf.Postgres.AutoMigrate {
		panicIfErr("failed to apply migrations", postgres.Migrate(ctx, conf.Postgres))
		logger.Info("migrations applied")
	}

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	searchCache := cache.NewLRUCache[[]byte](conf.Cache.Capacity, conf.Cache.TTL)

	publisher := analytics.NewKafkaPublisher(logger, conf.Kafka, conf.Breaker)

	searchService := service.NewSearchService(logger, pgRepo, searchCache)
	shippingService := service.NewShippingService(logger, txManager, pgRepo)
	catalogService := service.NewCatalogService(logger, txManager, pgRepo)
	sessionService := service.NewSessionService(logger, conf.Session, searchService, shippingService, publisher)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, catalogService)
	httpHandler := handler.NewHTTPHandler(logger, sessionService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(searchCache, sessionService)
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

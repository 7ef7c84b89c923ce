package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/velesmarket/payment-service/internal/app"
	"github.com/velesmarket/payment-service/internal/broker"
	"github.com/velesmarket/payment-service/internal/config"
	"github.com/velesmarket/payment-service/internal/handler"
	"github.com/velesmarket/payment-service/internal/postgres"
	"github.com/velesmarket/payment-service/internal/repo"
	"github.com/velesmarket/payment-service/internal/service"
	"github.com/velesmarket/payment-service/pkg/cache"
	"github.com/velesmarket/payment-service/pkg/trm"

	_ "github.com/velesmarket/payment-service/docs"

	"github.com/joho/godotenv"
)

// @title           Marketplace Payment Service API
// @version         1.0
// @description     Приём платёжных вебхуков, заказы и уведомления
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	transactionRepo := repo.NewTransactionRepo(db)
	notificationRepo := repo.NewNotificationRepo(db)

	// Инвентаризация читает и перезаписывает остатки внутри транзакции,
	// поэтому менеджер открывает их на уровне repeatable read.
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelRepeatableRead))
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	producer := broker.NewProducer(conf.Kafka.Brokers, conf.Kafka.NotificationsTopic)
	defer producer.Close()

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache)
	inventoryService := service.NewInventoryService(logger, txManager, productRepo)
	notifierService := service.NewNotifierService(logger, notificationRepo, producer)
	reconcilerService := service.NewReconcilerService(
		logger, orderRepo, transactionRepo, inventoryService, notifierService, orderCache,
	)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, notifierService)
	webhookHandler := handler.NewWebhookHandler(logger, conf.Gateway.WebhookSecret, reconcilerService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler, webhookHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.WarmUpSize})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}

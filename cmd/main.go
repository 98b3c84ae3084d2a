package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/musicschool/payments/internal/api"
	"github.com/musicschool/payments/internal/api/events"
	"github.com/musicschool/payments/internal/clients/auth"
	"github.com/musicschool/payments/internal/clients/documents"
	"github.com/musicschool/payments/internal/clients/mailer"
	"github.com/musicschool/payments/internal/repository"
	"github.com/musicschool/payments/internal/service"
	"github.com/musicschool/payments/internal/tpay"
	"github.com/musicschool/payments/pkg/broker"
	"github.com/musicschool/payments/pkg/config"
	"github.com/musicschool/payments/pkg/job"
	"github.com/musicschool/payments/pkg/logger"
	"github.com/musicschool/payments/pkg/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	if cfg.TPay.MerchantID == "" || cfg.TPay.Secret == "" {
		slog.WarnContext(ctx, "tpay merchant id or secret is not set, payments can not be initiated")
	}

	gateway := tpay.New(cfg.TPay)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.PaymentStatusChangedTopic)
	defer producer.Close()

	s := service.New(repo, gateway, producer, documents.NewClient(cfg.Documents), mailer.New(cfg.Mailer))

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.PaymentStatusChangedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.PaymentStatusChangedTopic, eventHandler.OnPaymentStatusChanged)
		consumer.Consume(ctx)
	}

	jobs := job.NewService().
		RegisterJob("generate missing invoices", cfg.Jobs.MissingInvoicesInterval, func(ctx context.Context) error {
			return s.GenerateMissingInvoices(ctx, cfg.Jobs.InvoiceRenderTimeout)
		}).
		Start(ctx)
	defer jobs.Stop()

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(auth.NewClient(cfg.IdentityServiceURL), cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey, cfg.TPay.CallbackIPWL)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

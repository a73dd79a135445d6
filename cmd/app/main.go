package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickbite/cmd"
	payments "quickbite/internal/adapters/in/amqp"
	events "quickbite/internal/adapters/out/amqp"
	"quickbite/internal/adapters/out/postgres"
	"quickbite/internal/core/ports"
	"quickbite/internal/pkg/rabbitmq"
	"quickbite/internal/pkg/tracing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, "quickbite", configs.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Error setting up tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	if err := postgres.Migrate(configs.DSN()); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
	gormDB := mustGormOpen(configs.DSN())

	var publisher ports.EventPublisher
	var broker *rabbitmq.Client
	if configs.AMQPURL != "" {
		broker, err = rabbitmq.Dial(configs.AMQPURL)
		if err != nil {
			log.Fatalf("Error connecting to RabbitMQ: %v", err)
		}
		defer broker.Close()

		err = broker.Declare(rabbitmq.Topology{
			EventsExchange: configs.AMQPEventsExchange,
			PaymentQueue:   configs.AMQPPaymentQueue,
			Prefetch:       configs.AMQPPrefetch,
		})
		if err != nil {
			log.Fatalf("Error declaring RabbitMQ topology: %v", err)
		}
		publisher = events.NewOrderEventPublisher(broker.PublishChannel(), configs.AMQPEventsExchange)
	} else {
		logger.Warn("AMQP_URL is not set: payment events are not consumed and order events are not published")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if broker != nil {
		consumer := payments.NewPaymentConsumer(app.CreateCreateOrderFromCartCommandHandler(), configs.AMQPPaymentQueue, logger)
		go func() {
			if err := consumer.Run(ctx, broker.ConsumeChannel()); err != nil {
				logger.Error("Payment consumer exited", "error", err)
				stop()
			}
		}()
	}

	startWebServer(ctx, app, configs.HTTPAddr())
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, addr string) {
	e := echo.New()
	if err := app.NewHTTPServer().Register(e); err != nil {
		log.Fatalf("Error registering routes: %v", err)
	}

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}

func mustGormOpen(dsn string) *gorm.DB {
	pgGorm, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connection to postgres through gorm\n: %s", err)
	}
	return pgGorm
}

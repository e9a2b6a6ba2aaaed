package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/events"
	"github.com/KinzixInfotech/edutemp-sub017/internal/messaging/kafka"
	"github.com/KinzixInfotech/edutemp-sub017/internal/messaging/kafka/producer"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunWorker relays the payroll outbox to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	_, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, events.Topics, 5); err != nil {
		return err
	}

	kafkaWriter := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBroker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: false,
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/KinzixInfotech/edutemp-sub017/internal/events"
	"github.com/KinzixInfotech/edutemp-sub017/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const computeConsumerGroup = "edutemp-payroll-compute"

// RunConsumer executes queued payroll computations until SIGINT or SIGTERM.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	payrollService := newPayrollService(sqlDB, gormDB, cfg.Workers)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.PayrollComputeRequestedTopic,
		GroupID:        computeConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumePayrollComputeRequested(ctx, reader, payrollService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}

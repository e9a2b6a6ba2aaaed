package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/KinzixInfotech/edutemp-sub017/internal/events"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payroll"
	payrollerrors "github.com/KinzixInfotech/edutemp-sub017/internal/payroll/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ComputeRunner is satisfied by payroll.Service.
type ComputeRunner interface {
	ComputePeriod(ctx context.Context, schoolID, periodID string) (payroll.ComputeResult, error)
}

// ConsumePayrollComputeRequested runs queued period computations until ctx
// is done. A message is committed once its computation finished or can never
// succeed; other failures leave it uncommitted for redelivery.
func ConsumePayrollComputeRequested(
	ctx context.Context,
	reader MessageReader,
	runner ComputeRunner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_compute")
	log.Info("payroll compute consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll compute consumer stopped")
				return
			}
			log.Error("fetch payroll compute message failed", zap.Error(err))
			continue
		}

		if !handleComputeRequested(ctx, msg, runner, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll compute message failed", zap.Error(err))
		}
	}
}

// handleComputeRequested reports whether msg is done with.
func handleComputeRequested(ctx context.Context, msg kafkago.Message, runner ComputeRunner, log *zap.Logger) bool {
	var event events.PayrollComputeRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payroll compute event failed", zap.Error(err))
		return true
	}

	if rid := header(msg, "request_id"); rid != "" {
		ctx = contextutil.WithRequestID(ctx, rid)
		log = log.With(zap.String("request_id", rid))
	}
	ctx = contextutil.WithLogger(ctx, log)

	result, err := runner.ComputePeriod(ctx, event.SchoolID, event.PeriodID)
	if err != nil {
		if errors.Is(err, payrollerrors.ErrRecomputeOnlyDraft) || errors.Is(err, payrollerrors.ErrPeriodNotFound) {
			log.Warn("payroll compute request no longer applicable, skipping",
				zap.String("period_id", event.PeriodID),
				zap.String("school_id", event.SchoolID),
				zap.Error(err),
			)
			return true
		}

		log.Error("payroll compute failed",
			zap.String("period_id", event.PeriodID),
			zap.String("school_id", event.SchoolID),
			zap.Error(err),
		)
		return false
	}

	log.Info("payroll period computed from queued request",
		zap.String("period_id", event.PeriodID),
		zap.String("school_id", event.SchoolID),
		zap.Int("items_computed", result.ItemsComputed),
		zap.Int("errors", len(result.Errors)),
	)
	return true
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

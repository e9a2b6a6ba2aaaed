package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/messaging/kafka"
	kafkamock "github.com/KinzixInfotech/edutemp-sub017/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	writeFn func(ctx context.Context, msgs ...kafkago.Message) error
	written []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if w.writeFn != nil {
		if err := w.writeFn(ctx, msgs...); err != nil {
			return err
		}
	}
	w.written = append(w.written, msgs...)
	return nil
}

func TestBuildMessage_CarriesTenantHeaders(t *testing.T) {
	msg := buildMessage(kafka.OutboxEvent{
		ID:            "o1",
		RequestID:     "req-1",
		SchoolID:      "school-1",
		AggregateType: "payroll_period",
		AggregateID:   "period-1",
		EventType:     "payroll.period.approved",
		Topic:         "payroll.period.approved",
		Payload:       []byte(`{}`),
	})

	assert.Equal(t, "payroll.period.approved", msg.Topic)
	assert.Equal(t, []byte("period-1"), msg.Key)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "school-1", headers["school_id"])
	assert.Equal(t, "req-1", headers["request_id"])
	assert.Equal(t, "payroll_period", headers["aggregate_type"])
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	pending := []kafka.OutboxEvent{
		{ID: "sent", SchoolID: "s1", AggregateID: "p1", EventType: "payroll.period.approved", Topic: "payroll.period.approved", Payload: []byte(`{}`)},
		{ID: "broken", SchoolID: "s1", AggregateID: "p2", EventType: "payroll.period.paid", Topic: "payroll.period.paid", Payload: []byte(`{}`)},
	}

	repo.EXPECT().ListPending(ctx, batchSize).Return(pending, nil)
	repo.EXPECT().MarkSent(ctx, "sent").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "broken", "broker unavailable").Return(nil)

	writer := &fakeWriter{writeFn: func(ctx context.Context, msgs ...kafkago.Message) error {
		if string(msgs[0].Key) == "p2" {
			return errors.New("broker unavailable")
		}
		return nil
	}}

	err := processPendingEvents(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Len(t, writer.written, 1)
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ListPending(gomock.Any(), batchSize).Return(nil, errors.New("db down"))

	err := processPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())
	assert.Error(t, err)
}

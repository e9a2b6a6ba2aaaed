package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/events"
	"github.com/KinzixInfotech/edutemp-sub017/internal/payroll"
	payrollerrors "github.com/KinzixInfotech/edutemp-sub017/internal/payroll/errors"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRunner struct {
	computeFn func(ctx context.Context, schoolID, periodID string) (payroll.ComputeResult, error)
}

func (f *fakeRunner) ComputePeriod(ctx context.Context, schoolID, periodID string) (payroll.ComputeResult, error) {
	return f.computeFn(ctx, schoolID, periodID)
}

// scriptedReader hands out msgs once each, then blocks until ctx ends.
type scriptedReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func computeMessage(t *testing.T, periodID string) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(events.PayrollComputeRequestedEvent{
		EventType: events.PayrollComputeRequestedTopic,
		PeriodID:  periodID,
		SchoolID:  "school-1",
	})
	assert.NoError(t, err)
	return kafkago.Message{
		Topic:   events.PayrollComputeRequestedTopic,
		Value:   body,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-" + periodID)}},
	}
}

func TestConsumePayrollComputeRequested(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		msgs: []kafkago.Message{
			computeMessage(t, "ok"),
			computeMessage(t, "approved"),
			computeMessage(t, "db-down"),
			{Value: []byte("not json")},
		},
		cancel: cancel,
	}

	var seen []string
	runner := &fakeRunner{computeFn: func(ctx context.Context, schoolID, periodID string) (payroll.ComputeResult, error) {
		assert.Equal(t, "school-1", schoolID)
		assert.Equal(t, "req-"+periodID, contextutil.GetRequestID(ctx))
		seen = append(seen, periodID)
		switch periodID {
		case "approved":
			return payroll.ComputeResult{}, payrollerrors.ErrRecomputeOnlyDraft
		case "db-down":
			return payroll.ComputeResult{}, errors.New("connection refused")
		}
		return payroll.ComputeResult{PeriodID: periodID, ItemsComputed: 3}, nil
	}}

	ConsumePayrollComputeRequested(ctx, reader, runner, zap.NewNop())

	assert.Equal(t, []string{"ok", "approved", "db-down"}, seen)
	// The transient failure stays uncommitted; the undecodable message is dropped.
	assert.Len(t, reader.committed, 3)
	for _, m := range reader.committed {
		assert.NotContains(t, string(m.Value), "db-down")
	}
}

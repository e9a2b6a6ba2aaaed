package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/leave"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveRepository struct {
	findApprovedOverlappingFn func(ctx context.Context, schoolID, employeeID string, from, to time.Time) ([]leave.Leave, error)
	findEncashableBalancesFn  func(ctx context.Context, schoolID, employeeID string) ([]leave.Balance, error)
}

func (f *fakeLeaveRepository) FindApprovedOverlapping(ctx context.Context, schoolID, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	if f.findApprovedOverlappingFn != nil {
		return f.findApprovedOverlappingFn(ctx, schoolID, employeeID, from, to)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindEncashableBalances(ctx context.Context, schoolID, employeeID string) ([]leave.Balance, error) {
	if f.findEncashableBalancesFn != nil {
		return f.findEncashableBalancesFn(ctx, schoolID, employeeID)
	}
	return nil, nil
}

func date(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveService_ApprovedLeave(t *testing.T) {
	repo := &fakeLeaveRepository{
		findApprovedOverlappingFn: func(ctx context.Context, schoolID, employeeID string, from, to time.Time) ([]leave.Leave, error) {
			assert.Equal(t, "school-1", schoolID)
			return []leave.Leave{
				{StartDate: date(time.March, 30), EndDate: date(time.April, 2)}, // 1-2 April inside
				{StartDate: date(time.April, 2), EndDate: date(time.April, 2), IsHalfDay: true},
				{StartDate: date(time.April, 10), EndDate: date(time.April, 10), IsHalfDay: true},
				{StartDate: date(time.April, 29), EndDate: date(time.May, 3)}, // 29-30 April inside
			}, nil
		},
	}

	svc := leave.NewService(repo)
	days, err := svc.ApprovedLeave(context.Background(), "school-1", "emp-1", date(time.April, 1), date(time.April, 30))

	assert.NoError(t, err)
	if assert.Len(t, days, 5) {
		assert.Equal(t, date(time.April, 1), days[0].Date)
		assert.Equal(t, "1", days[1].Fraction.String()) // overlap capped at a full day
		assert.Equal(t, date(time.April, 10), days[2].Date)
		assert.Equal(t, "0.5", days[2].Fraction.String())
		assert.Equal(t, date(time.April, 30), days[4].Date)
	}
}

func TestLeaveService_ApprovedLeave_RepoError(t *testing.T) {
	repo := &fakeLeaveRepository{
		findApprovedOverlappingFn: func(ctx context.Context, schoolID, employeeID string, from, to time.Time) ([]leave.Leave, error) {
			return nil, errors.New("db down")
		},
	}

	_, err := leave.NewService(repo).ApprovedLeave(context.Background(), "s", "e", date(time.April, 1), date(time.April, 30))
	assert.Error(t, err)
}

func TestLeaveService_EncashableLeaveDays(t *testing.T) {
	repo := &fakeLeaveRepository{
		findEncashableBalancesFn: func(ctx context.Context, schoolID, employeeID string) ([]leave.Balance, error) {
			return []leave.Balance{
				{LeaveType: "EARNED", Remaining: decimal.NewFromInt(12), Encashable: true},
				{LeaveType: "COMP_OFF", Remaining: decimal.NewFromInt(-1), Encashable: true},
			}, nil
		},
	}

	days, err := leave.NewService(repo).EncashableLeaveDays(context.Background(), "s", "e")
	assert.NoError(t, err)
	assert.Equal(t, "12", days.String())
}

package leave

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service answers the leave questions payroll asks. Balances are validated by
// the leave module when a request is approved; they are trusted here.
type Service interface {
	ApprovedLeave(ctx context.Context, schoolID, employeeID string, from, to time.Time) ([]Day, error)
	EncashableLeaveDays(ctx context.Context, schoolID, employeeID string) (decimal.Decimal, error)
}

var halfDay = decimal.RequireFromString("0.5")

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, logger: l}
}

// Day is the share of one calendar date covered by approved leave.
type Day struct {
	Date     time.Time
	Fraction decimal.Decimal
}

// ApprovedLeave returns the calendar dates inside [from, to] covered by
// approved leave, sorted by date. A half-day leave covers 0.5 of each date;
// overlapping requests on one date are capped at a full day. Whether a date
// is a working day is left to the caller.
func (s *service) ApprovedLeave(ctx context.Context, schoolID, employeeID string, from, to time.Time) ([]Day, error) {
	leaves, err := s.repo.FindApprovedOverlapping(ctx, schoolID, employeeID, from, to)
	if err != nil {
		s.logger.Error("find approved leaves failed",
			zap.String("school_id", schoolID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	one := decimal.NewFromInt(1)
	covered := make(map[time.Time]decimal.Decimal)
	for _, l := range leaves {
		fraction := one
		if l.IsHalfDay {
			fraction = halfDay
		}
		for _, d := range eachDay(l.StartDate, l.EndDate, from, to) {
			covered[d] = decimal.Min(covered[d].Add(fraction), one)
		}
	}

	days := make([]Day, 0, len(covered))
	for d, f := range covered {
		days = append(days, Day{Date: d, Fraction: f})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

func (s *service) EncashableLeaveDays(ctx context.Context, schoolID, employeeID string) (decimal.Decimal, error) {
	balances, err := s.repo.FindEncashableBalances(ctx, schoolID, employeeID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, b := range balances {
		if b.Remaining.IsPositive() {
			total = total.Add(b.Remaining)
		}
	}
	return total, nil
}

// eachDay lists the dates of [start, end] clipped to [from, to].
func eachDay(start, end, from, to time.Time) []time.Time {
	s := dateOnly(start)
	if f := dateOnly(from); f.After(s) {
		s = f
	}
	e := dateOnly(end)
	if t := dateOnly(to); t.Before(e) {
		e = t
	}

	var days []time.Time
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package attendance

import (
	"context"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/tenant"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Repository is the read side of attendance used by payroll.
type Repository interface {
	FindByEmployeeInRange(ctx context.Context, schoolID, employeeID string, rng DateRange) ([]Attendance, error)
	ListHolidays(ctx context.Context, schoolID string, rng DateRange) ([]Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployeeInRange(ctx context.Context, schoolID, employeeID string, rng DateRange) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", rng.Start.Format(dateLayout), rng.End.Format(dateLayout)).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListHolidays(ctx context.Context, schoolID string, rng DateRange) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("holiday_date BETWEEN ? AND ?", rng.Start.Format(dateLayout), rng.End.Format(dateLayout)).
		Order("holiday_date ASC").
		Find(&rows).Error
	return rows, err
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the first to last day of a month.
func MonthRange(year int, month time.Month) DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// Clamp truncates r to start no earlier than joining and end no later than
// relieving. It reports false when nothing of r remains.
func (r DateRange) Clamp(joining time.Time, relieving *time.Time) (DateRange, bool) {
	out := DateRange{Start: Day(r.Start), End: Day(r.End)}
	if !joining.IsZero() && Day(joining).After(out.Start) {
		out.Start = Day(joining)
	}
	if relieving != nil && Day(*relieving).Before(out.End) {
		out.End = Day(*relieving)
	}
	return out, !out.Start.After(out.End)
}

func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(Day(r.Start)) && !d.After(Day(r.End))
}

// Days calls fn for every calendar day in r.
func (r DateRange) Days(fn func(day time.Time)) {
	for d := Day(r.Start); !d.After(Day(r.End)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

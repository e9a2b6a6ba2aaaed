package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	half = decimal.RequireFromString("0.5")
	one  = decimal.NewFromInt(1)
)

// Policy carries the attendance rules of a school's payroll configuration.
type Policy struct {
	WeeklyOffDays    []time.Weekday
	HalfDayThreshold decimal.Decimal // hours
	StandardHours    decimal.Decimal // hours per day, overtime starts past this
	LateGraceMinutes int
	// WorkStart is "HH:MM" in the school's local time; empty keeps the raw LATE status.
	WorkStart string
	Location  *time.Location
}

type Summary struct {
	WorkingDays   int             `json:"working_days"`
	DaysWorked    decimal.Decimal `json:"days_worked"`
	DaysAbsent    decimal.Decimal `json:"days_absent"`
	DaysLeave     decimal.Decimal `json:"days_leave"`
	DaysHoliday   int             `json:"days_holiday"`
	LateCount     int             `json:"late_count"`
	HalfDayCount  int             `json:"half_day_count"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

// PaidDays is the number of days that earn salary: worked days plus approved leave.
func (s Summary) PaidDays() decimal.Decimal {
	return s.DaysWorked.Add(s.DaysLeave)
}

// LeaveDay is the share of one date covered by approved leave.
type LeaveDay struct {
	Date     time.Time
	Fraction decimal.Decimal
}

type AggregateInput struct {
	Range    DateRange
	Records  []Attendance
	Holidays []Holiday
	Leave    []LeaveDay
	Policy   Policy
}

// Aggregate reduces one employee's daily attendance over Range.
//
// Weekly off days and holidays are not working days. Each working day is
// split into worked, leave and absent parts: leave only covers the part of
// its own date that was not worked, and leave on a non-working day counts
// for nothing.
func Aggregate(in AggregateInput) Summary {
	weeklyOff := make(map[time.Weekday]bool, len(in.Policy.WeeklyOffDays))
	for _, wd := range in.Policy.WeeklyOffDays {
		weeklyOff[wd] = true
	}

	holidays := make(map[string]bool, len(in.Holidays))
	for _, h := range in.Holidays {
		holidays[h.HolidayDate.Format(dateLayout)] = true
	}

	leaveByDate := make(map[string]decimal.Decimal, len(in.Leave))
	for _, l := range in.Leave {
		key := l.Date.Format(dateLayout)
		leaveByDate[key] = leaveByDate[key].Add(decimal.Max(l.Fraction, decimal.Zero))
	}

	byDate := make(map[string]Attendance, len(in.Records))
	for _, rec := range in.Records {
		byDate[rec.AttendanceDate.Format(dateLayout)] = rec
	}

	s := Summary{
		DaysWorked:    decimal.Zero,
		DaysAbsent:    decimal.Zero,
		DaysLeave:     decimal.Zero,
		OvertimeHours: decimal.Zero,
	}

	in.Range.Days(func(day time.Time) {
		if weeklyOff[day.Weekday()] {
			return
		}
		key := day.Format(dateLayout)
		if holidays[key] {
			s.DaysHoliday++
			return
		}
		s.WorkingDays++

		worked := decimal.Zero
		rec, ok := byDate[key]
		present := ok && isPresent(rec.Status)
		hours, hasHours := decimal.Zero, false
		if present {
			hours, hasHours = workedHours(rec)
			if rec.Status == StatusHalfDay || (hasHours && hours.LessThan(in.Policy.HalfDayThreshold)) {
				s.HalfDayCount++
				worked = half
			} else {
				worked = one
			}
		}

		unworked := one.Sub(worked)
		leave := decimal.Min(leaveByDate[key], unworked)
		s.DaysWorked = s.DaysWorked.Add(worked)
		s.DaysLeave = s.DaysLeave.Add(leave)
		s.DaysAbsent = s.DaysAbsent.Add(unworked.Sub(leave))

		if !present {
			return
		}

		if isLate(rec, in.Policy) {
			s.LateCount++
		}

		if hasHours && in.Policy.StandardHours.IsPositive() && hours.GreaterThan(in.Policy.StandardHours) {
			s.OvertimeHours = s.OvertimeHours.Add(hours.Sub(in.Policy.StandardHours))
		}
	})

	s.OvertimeHours = s.OvertimeHours.Round(2)

	return s
}

// CountWorkingDays is the number of declared working days in rng.
func CountWorkingDays(rng DateRange, holidays []Holiday, weeklyOff []time.Weekday) int {
	return Aggregate(AggregateInput{
		Range:    rng,
		Holidays: holidays,
		Policy:   Policy{WeeklyOffDays: weeklyOff},
	}).WorkingDays
}

func isPresent(status string) bool {
	switch status {
	case StatusPresent, StatusLate, StatusHalfDay:
		return true
	default:
		return false
	}
}

// workedHours is false when either punch is missing; such a day is not a half day.
func workedHours(rec Attendance) (decimal.Decimal, bool) {
	if rec.ClockIn == nil || rec.ClockOut == nil || !rec.ClockOut.After(*rec.ClockIn) {
		return decimal.Zero, false
	}
	d := rec.ClockOut.Sub(*rec.ClockIn)
	return decimal.NewFromFloat(d.Hours()), true
}

func isLate(rec Attendance, p Policy) bool {
	if p.WorkStart == "" || rec.ClockIn == nil {
		return rec.Status == StatusLate
	}

	start, err := time.Parse("15:04", p.WorkStart)
	if err != nil {
		return rec.Status == StatusLate
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	in := rec.ClockIn.In(loc)
	deadline := time.Date(in.Year(), in.Month(), in.Day(), start.Hour(), start.Minute(), 0, 0, loc).
		Add(time.Duration(p.LateGraceMinutes) * time.Minute)

	return in.After(deadline)
}

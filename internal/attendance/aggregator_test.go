package attendance_test

import (
	"testing"
	"time"

	"github.com/KinzixInfotech/edutemp-sub017/internal/attendance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// April 2026 starts on a Wednesday and has four Sundays.
var april = attendance.MonthRange(2026, time.April)

func defaultPolicy() attendance.Policy {
	return attendance.Policy{
		WeeklyOffDays:    []time.Weekday{time.Sunday},
		HalfDayThreshold: decimal.NewFromInt(4),
		StandardHours:    decimal.NewFromInt(8),
		LateGraceMinutes: 15,
	}
}

func punch(day int, inHour, inMin int, hours float64, status string) attendance.Attendance {
	date := time.Date(2026, time.April, day, 0, 0, 0, 0, time.UTC)
	in := date.Add(time.Duration(inHour)*time.Hour + time.Duration(inMin)*time.Minute)
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	return attendance.Attendance{AttendanceDate: date, ClockIn: &in, ClockOut: &out, Status: status}
}

func fullMonth(t *testing.T) []attendance.Attendance {
	t.Helper()
	var recs []attendance.Attendance
	april.Days(func(d time.Time) {
		if d.Weekday() == time.Sunday {
			return
		}
		recs = append(recs, punch(d.Day(), 9, 0, 8, attendance.StatusPresent))
	})
	assert.Len(t, recs, 26)
	return recs
}

func TestAggregate_FullAttendance(t *testing.T) {
	s := attendance.Aggregate(attendance.AggregateInput{
		Range:   april,
		Records: fullMonth(t),
		Policy:  defaultPolicy(),
	})

	assert.Equal(t, 26, s.WorkingDays)
	assert.True(t, s.DaysWorked.Equal(decimal.NewFromInt(26)))
	assert.True(t, s.DaysAbsent.IsZero())
	assert.True(t, s.OvertimeHours.IsZero())
	assert.True(t, s.PaidDays().Equal(decimal.NewFromInt(26)))
}

func TestAggregate_UnmarkedDaysAreAbsent(t *testing.T) {
	recs := fullMonth(t)[:20]

	s := attendance.Aggregate(attendance.AggregateInput{Range: april, Records: recs, Policy: defaultPolicy()})

	assert.Equal(t, 26, s.WorkingDays)
	assert.Equal(t, "20", s.DaysWorked.String())
	assert.Equal(t, "6", s.DaysAbsent.String())
}

func leaveOn(days ...int) []attendance.LeaveDay {
	out := make([]attendance.LeaveDay, 0, len(days))
	for _, d := range days {
		out = append(out, attendance.LeaveDay{
			Date:     time.Date(2026, time.April, d, 0, 0, 0, 0, time.UTC),
			Fraction: decimal.NewFromInt(1),
		})
	}
	return out
}

// The first 20 records cover 1-23 April; 24, 25 and 27-30 April are unmarked.
func TestAggregate_LeaveCoversOnlyUnworkedDates(t *testing.T) {
	recs := fullMonth(t)[:20]

	s := attendance.Aggregate(attendance.AggregateInput{
		Range:   april,
		Records: recs,
		Leave:   leaveOn(24, 25),
		Policy:  defaultPolicy(),
	})
	assert.Equal(t, "2", s.DaysLeave.String())
	assert.Equal(t, "4", s.DaysAbsent.String())
	assert.Equal(t, "22", s.PaidDays().String())

	// Leave on worked dates and on a Sunday adds nothing.
	s = attendance.Aggregate(attendance.AggregateInput{
		Range:   april,
		Records: recs,
		Leave:   leaveOn(1, 2, 3, 19, 24, 25, 27, 28, 29, 30),
		Policy:  defaultPolicy(),
	})
	assert.Equal(t, "6", s.DaysLeave.String())
	assert.True(t, s.DaysAbsent.IsZero())
}

func TestAggregate_WeekendLeaveDoesNotCoverUnmarkedWorkingDay(t *testing.T) {
	week := attendance.DateRange{
		Start: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.April, 7, 0, 0, 0, 0, time.UTC),
	}
	recs := []attendance.Attendance{
		punch(1, 9, 0, 8, attendance.StatusPresent),
		punch(2, 9, 0, 8, attendance.StatusPresent),
		punch(3, 9, 0, 8, attendance.StatusPresent),
		punch(4, 9, 0, 8, attendance.StatusPresent),
		punch(6, 9, 0, 8, attendance.StatusPresent),
	}

	s := attendance.Aggregate(attendance.AggregateInput{
		Range:   week,
		Records: recs,
		Leave:   leaveOn(5), // Sunday
		Policy:  defaultPolicy(),
	})

	assert.Equal(t, 6, s.WorkingDays)
	assert.Equal(t, "5", s.DaysWorked.String())
	assert.True(t, s.DaysLeave.IsZero())
	assert.Equal(t, "1", s.DaysAbsent.String())
	assert.Equal(t, "5", s.PaidDays().String())
}

func TestAggregate_HalfDayLeaveOnHalfWorkedDay(t *testing.T) {
	recs := []attendance.Attendance{punch(1, 9, 0, 3, attendance.StatusPresent)}
	leave := []attendance.LeaveDay{
		{Date: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), Fraction: decimal.RequireFromString("0.5")},
		{Date: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC), Fraction: decimal.RequireFromString("0.5")},
	}

	s := attendance.Aggregate(attendance.AggregateInput{Range: april, Records: recs, Leave: leave, Policy: defaultPolicy()})

	assert.Equal(t, "0.5", s.DaysWorked.String())
	assert.Equal(t, "1", s.DaysLeave.String())
	assert.Equal(t, "24.5", s.DaysAbsent.String())
}

func TestAggregate_HolidaysAreNotWorkingDays(t *testing.T) {
	holidays := []attendance.Holiday{
		{HolidayDate: time.Date(2026, time.April, 14, 0, 0, 0, 0, time.UTC), Name: "Ambedkar Jayanti"},
		// falls on a Sunday, already off
		{HolidayDate: time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC), Name: "Weekend event"},
	}

	s := attendance.Aggregate(attendance.AggregateInput{Range: april, Holidays: holidays, Policy: defaultPolicy()})

	assert.Equal(t, 25, s.WorkingDays)
	assert.Equal(t, 1, s.DaysHoliday)
	assert.Equal(t, "25", s.DaysAbsent.String())
	assert.Equal(t, 25, attendance.CountWorkingDays(april, holidays, []time.Weekday{time.Sunday}))
}

func TestAggregate_HalfDayAndOvertime(t *testing.T) {
	missingOut := punch(3, 9, 0, 0, attendance.StatusPresent)
	missingOut.ClockOut = nil

	recs := []attendance.Attendance{
		punch(1, 9, 0, 3, attendance.StatusPresent),  // half day by duration
		punch(2, 9, 0, 10.5, attendance.StatusPresent), // 2.5h overtime
		missingOut, // full day, no overtime
		punch(4, 9, 0, 8, attendance.StatusHalfDay),
	}

	s := attendance.Aggregate(attendance.AggregateInput{Range: april, Records: recs, Policy: defaultPolicy()})

	assert.Equal(t, 2, s.HalfDayCount)
	assert.Equal(t, "3", s.DaysWorked.String())
	assert.Equal(t, "2.5", s.OvertimeHours.String())
	assert.Equal(t, "23", s.DaysAbsent.String())
}

func TestAggregate_LateWithGrace(t *testing.T) {
	policy := defaultPolicy()
	policy.WorkStart = "09:00"

	recs := []attendance.Attendance{
		punch(1, 9, 10, 8, attendance.StatusLate),    // inside grace
		punch(2, 9, 20, 8, attendance.StatusPresent), // past grace
		punch(3, 8, 55, 8, attendance.StatusPresent),
	}

	s := attendance.Aggregate(attendance.AggregateInput{Range: april, Records: recs, Policy: policy})
	assert.Equal(t, 1, s.LateCount)

	policy.WorkStart = ""
	s = attendance.Aggregate(attendance.AggregateInput{Range: april, Records: recs, Policy: policy})
	assert.Equal(t, 1, s.LateCount)
}

func TestDateRange_Clamp(t *testing.T) {
	joined := time.Date(2026, time.April, 16, 0, 0, 0, 0, time.UTC)

	rng, ok := april.Clamp(joined, nil)
	assert.True(t, ok)
	assert.Equal(t, 13, attendance.CountWorkingDays(rng, nil, []time.Weekday{time.Sunday}))

	relieved := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	_, ok = april.Clamp(time.Time{}, &relieved)
	assert.False(t, ok)
}

package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Raw daily statuses written by the attendance capture module.
const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
	StatusAbsent  = "ABSENT"
	StatusOnLeave = "ON_LEAVE"
)

type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID       uuid.UUID  `gorm:"column:school_id;type:uuid;not null;index:idx_attendance_school_employee_date"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_attendance_school_employee_date"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;index:idx_attendance_school_employee_date"`
	ClockIn        *time.Time `gorm:"column:clock_in;type:timestamptz"`
	ClockOut       *time.Time `gorm:"column:clock_out;type:timestamptz"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type Holiday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID    uuid.UUID `gorm:"column:school_id;type:uuid;not null;uniqueIndex:uq_holiday_school_date"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null;uniqueIndex:uq_holiday_school_date"`
	Name        string    `gorm:"column:name;type:varchar(120);not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}

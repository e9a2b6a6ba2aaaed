package events

import "time"

const (
	PayrollComputeRequestedTopic = "payroll.period.compute.requested"
	PayrollPeriodApprovedTopic   = "payroll.period.approved"
	PayrollPeriodRejectedTopic   = "payroll.period.rejected"
	PayrollPeriodPaidTopic       = "payroll.period.paid"
)

// Topics lists every topic the payroll service produces.
var Topics = []string{
	PayrollComputeRequestedTopic,
	PayrollPeriodApprovedTopic,
	PayrollPeriodRejectedTopic,
	PayrollPeriodPaidTopic,
}

type PayrollComputeRequestedEvent struct {
	EventType   string    `json:"event_type"`
	PeriodID    string    `json:"period_id"`
	SchoolID    string    `json:"school_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// PayrollPeriodEvent is published on approve, reject and pay.
type PayrollPeriodEvent struct {
	EventType     string    `json:"event_type"`
	PeriodID      string    `json:"period_id"`
	SchoolID      string    `json:"school_id"`
	ReferenceNo   string    `json:"reference_no"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Status        string    `json:"status"`
	ActorID       string    `json:"actor_id"`
	Remarks       string    `json:"remarks,omitempty"`
	EmployeeCount int       `json:"employee_count"`
	TotalNet      string    `json:"total_net"`
	OccurredAt    time.Time `json:"occurred_at"`
}

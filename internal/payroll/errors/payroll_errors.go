package payrollerrors

import (
	"net/http"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/apperror"
)

var (
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid school id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidMonthYear = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll status filter",
		http.StatusBadRequest,
	)
	ErrRemarksRequired = apperror.New(
		apperror.CodeInvalidInput,
		"remarks are required to reject a payroll period",
		http.StatusBadRequest,
	)
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll period not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found for this employee in the period",
		http.StatusNotFound,
	)
	ErrInvalidStateTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll period status transition",
		http.StatusConflict,
	)
	ErrRecomputeOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll period can only be computed while status is DRAFT",
		http.StatusConflict,
	)
	ErrNoItems = apperror.New(
		apperror.CodeInvalidState,
		"payroll period has no computed items",
		http.StatusConflict,
	)
	ErrConcurrentModification = apperror.New(
		apperror.CodeConflict,
		"payroll period was modified concurrently, retry the request",
		http.StatusConflict,
	)
	ErrLoanLedgerChanged = apperror.New(
		apperror.CodeConflict,
		"a loan changed after the period was computed, reject and recompute the period",
		http.StatusConflict,
	)

	// Per-employee computation failures, collected in the batch result.
	ErrNoSalaryStructure = apperror.New(
		apperror.CodeInvalidInput,
		"employee has no salary structure assigned",
		http.StatusBadRequest,
	)
	ErrSalaryStructureMissing = apperror.New(
		apperror.CodeInvalidInput,
		"assigned salary structure does not exist",
		http.StatusBadRequest,
	)
	ErrNotEmployedInPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"employee was not employed during the period",
		http.StatusBadRequest,
	)
)

package payrollprofileerrors

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
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidStructureID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary structure id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrRelievingBeforeJoining = apperror.New(
		apperror.CodeInvalidInput,
		"relieving date cannot be before joining date",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeType = apperror.New(
		apperror.CodeInvalidInput,
		"employee type must be TEACHING or NON_TEACHING",
		http.StatusBadRequest,
	)
	ErrInvalidEmploymentType = apperror.New(
		apperror.CodeInvalidInput,
		"employment type must be PERMANENT, CONTRACT, PROBATION or PART_TIME",
		http.StatusBadRequest,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll profile not found",
		http.StatusNotFound,
	)
	ErrStructureNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"salary structure does not exist in this school",
		http.StatusBadRequest,
	)
)

package loanerrors

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
	ErrInvalidPrincipal = apperror.New(
		apperror.CodeInvalidInput,
		"principal must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidInterestRate = apperror.New(
		apperror.CodeInvalidInput,
		"interest rate must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidTenure = apperror.New(
		apperror.CodeInvalidInput,
		"tenure must be between 1 and 360 months",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid start date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"employee has no payroll profile",
		http.StatusBadRequest,
	)
	ErrLoanNotFound = apperror.New(
		apperror.CodeNotFound,
		"loan not found",
		http.StatusNotFound,
	)
)

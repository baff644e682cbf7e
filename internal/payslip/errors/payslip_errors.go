package paysliperrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)

	ErrForbiddenPayslipAccess = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to this payslip",
		http.StatusForbidden,
	)

	ErrNoApprovedHours = apperror.New(
		apperror.CodeInvalidState,
		"no approved timesheet hours in this pay period",
		http.StatusConflict,
	)

	ErrPayslipAlreadyFinal = apperror.New(
		apperror.CodeInvalidState,
		"payslip has already been generated or paid",
		http.StatusConflict,
	)

	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeInvalidState,
		"payslip must be generated before it can be paid",
		http.StatusConflict,
	)

	ErrPayslipAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payslip has already been paid",
		http.StatusConflict,
	)

	ErrInvalidPeriodDate = apperror.New(
		apperror.CodeInvalidInput,
		"period date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)

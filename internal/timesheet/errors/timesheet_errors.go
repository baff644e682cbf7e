package timesheeterrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"timesheet not found",
		http.StatusNotFound,
	)

	ErrDuplicateTimesheet = apperror.New(
		apperror.CodeConflict,
		"a timesheet for this worker and date already exists",
		http.StatusConflict,
	)

	ErrNotYourWorker = apperror.New(
		apperror.CodeForbidden,
		"worker is not assigned to you",
		http.StatusForbidden,
	)

	ErrForbiddenTimesheetAccess = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to this timesheet",
		http.StatusForbidden,
	)

	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"timesheet has already been approved or rejected",
		http.StatusConflict,
	)

	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"decision must be approved, rejected or flagged",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)

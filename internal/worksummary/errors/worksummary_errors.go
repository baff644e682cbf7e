package worksummaryerrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrSummaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"work summary not found",
		http.StatusNotFound,
	)

	ErrForbiddenSummaryAccess = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to this work summary",
		http.StatusForbidden,
	)

	ErrSummaryAlreadyReviewed = apperror.New(
		apperror.CodeInvalidState,
		"work summary has already been reviewed",
		http.StatusConflict,
	)

	ErrNotYourWorkerSummary = apperror.New(
		apperror.CodeForbidden,
		"worker is not assigned to you",
		http.StatusForbidden,
	)

	ErrInvalidPeriodDate = apperror.New(
		apperror.CodeInvalidInput,
		"period_date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)

package payperioderrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrInvalidInterval = apperror.New(
		apperror.CodeInvalidInterval,
		"clock-out must be later than clock-in",
		http.StatusBadRequest,
	)
	ErrInvalidClockFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid clock time, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidAmount,
		"hours, rate and deductions cannot be negative",
		http.StatusBadRequest,
	)
)

package profileerrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"profile not found",
		http.StatusNotFound,
	)

	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"profile already exists for this user",
		http.StatusConflict,
	)

	ErrInvalidSupervisor = apperror.New(
		apperror.CodeInvalidInput,
		"supervisor must be an approved account holding the supervisor role",
		http.StatusBadRequest,
	)

	ErrAccountNotPending = apperror.New(
		apperror.CodeConflict,
		"account status decision already recorded",
		http.StatusConflict,
	)

	ErrForbiddenProfileAccess = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to this profile",
		http.StatusForbidden,
	)

	ErrInvalidHourlyRate = apperror.New(
		apperror.CodeInvalidInput,
		"hourly rate must not be negative",
		http.StatusBadRequest,
	)
)

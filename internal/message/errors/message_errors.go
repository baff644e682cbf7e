package messageerrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrMessageNotFound = apperror.New(
		apperror.CodeNotFound,
		"message not found",
		http.StatusNotFound,
	)

	ErrRecipientNotFound = apperror.New(
		apperror.CodeNotFound,
		"recipient not found",
		http.StatusNotFound,
	)

	ErrForbiddenMessageAccess = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to this message",
		http.StatusForbidden,
	)

	ErrSelfMessage = apperror.New(
		apperror.CodeInvalidInput,
		"cannot send a message to yourself",
		http.StatusBadRequest,
	)

	ErrBroadcastNotReadable = apperror.New(
		apperror.CodeInvalidState,
		"broadcast messages cannot be marked read",
		http.StatusConflict,
	)
)

package contracterrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrContractNotFound = apperror.New(
		apperror.CodeNotFound,
		"contract not found",
		http.StatusNotFound,
	)

	ErrForbiddenContractAccess = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to this contract",
		http.StatusForbidden,
	)

	ErrContractAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"contract has already been approved",
		http.StatusConflict,
	)

	ErrInvalidContractDates = apperror.New(
		apperror.CodeInvalidInput,
		"contract end date must be after the start date",
		http.StatusBadRequest,
	)

	ErrInvalidContractRate = apperror.New(
		apperror.CodeInvalidInput,
		"contract rates must not be negative",
		http.StatusBadRequest,
	)
)

package financeerrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrTransactionNotFound = apperror.New(
		apperror.CodeNotFound,
		"financial transaction not found",
		http.StatusNotFound,
	)

	ErrForbiddenFinanceAccess = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to financial records",
		http.StatusForbidden,
	)

	ErrInvalidTransactionType = apperror.New(
		apperror.CodeInvalidInput,
		"transaction type must be payroll, expense, reimbursement, bonus or deduction",
		http.StatusBadRequest,
	)

	ErrInvalidTransactionDate = apperror.New(
		apperror.CodeInvalidInput,
		"transaction date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)

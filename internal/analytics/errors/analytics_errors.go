package analyticserrors

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

var (
	ErrForbiddenAnalyticsAccess = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to analytics",
		http.StatusForbidden,
	)

	ErrExecutiveOnly = apperror.New(
		apperror.CodeForbidden,
		"executive analytics are restricted to the chief executive",
		http.StatusForbidden,
	)
)

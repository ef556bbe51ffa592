package handler

import (
	"net/http"

	"github.com/casualfc/matchday/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodeSessionNotFound      = apierr.CodeSessionNotFound
	CodePlayerNotFound       = apierr.CodePlayerNotFound
	CodeMatchNotFound        = apierr.CodeMatchNotFound
	CodePlayerOnField        = apierr.CodePlayerOnField
	CodeInsufficientPlayers  = apierr.CodeInsufficientPlayers
	CodeLastMatchNotFinished = apierr.CodeLastMatchNotFinished
	CodeNoWinnerDefined      = apierr.CodeNoWinnerDefined
	CodeSessionStarted       = apierr.CodeSessionStarted
	CodeMatchFinished        = apierr.CodeMatchFinished
	CodeMatchInProgress      = apierr.CodeMatchInProgress
	CodeNoCurrentMatch       = apierr.CodeNoCurrentMatch
	CodeUnknownTeam          = apierr.CodeUnknownTeam
	CodeInvalidConfig        = apierr.CodeInvalidConfig
	CodeConflict             = apierr.CodeConflict
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}

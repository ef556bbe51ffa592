package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/casualfc/matchday/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeSessionNotFound      = "SESSION_NOT_FOUND"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeMatchNotFound        = "MATCH_NOT_FOUND"
	CodePlayerOnField        = "PLAYER_ON_FIELD"
	CodeInsufficientPlayers  = "INSUFFICIENT_PLAYERS"
	CodeLastMatchNotFinished = "LAST_MATCH_NOT_FINISHED"
	CodeNoWinnerDefined      = "NO_WINNER_DEFINED"
	CodeSessionStarted       = "SESSION_STARTED"
	CodeMatchFinished        = "MATCH_FINISHED"
	CodeMatchInProgress      = "MATCH_IN_PROGRESS"
	CodeNoCurrentMatch       = "NO_CURRENT_MATCH"
	CodeUnknownTeam          = "UNKNOWN_TEAM"
	CodeInvalidConfig        = "INVALID_CONFIG"
	CodeConflict             = "CONFLICT"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrPlayerOnField):
		return &httpError{http.StatusConflict, APIError{CodePlayerOnField, "Player is in the current match"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players"}}
	case errors.Is(err, model.ErrLastMatchNotFinished):
		return &httpError{http.StatusConflict, APIError{CodeLastMatchNotFinished, "The last match is not finished"}}
	case errors.Is(err, model.ErrNoWinnerDefined):
		return &httpError{http.StatusConflict, APIError{CodeNoWinnerDefined, "The last match has no winner"}}
	case errors.Is(err, model.ErrSessionStarted):
		return &httpError{http.StatusConflict, APIError{CodeSessionStarted, "Session already has matches"}}
	case errors.Is(err, model.ErrMatchFinished):
		return &httpError{http.StatusConflict, APIError{CodeMatchFinished, "Match is already finished"}}
	case errors.Is(err, model.ErrMatchInProgress):
		return &httpError{http.StatusConflict, APIError{CodeMatchInProgress, "A match is in progress"}}
	case errors.Is(err, model.ErrNoCurrentMatch):
		return &httpError{http.StatusConflict, APIError{CodeNoCurrentMatch, "No match in progress"}}
	case errors.Is(err, model.ErrUnknownTeam):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownTeam, "Team id does not belong to this match"}}
	case errors.Is(err, model.ErrInvalidConfig):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, "Invalid configuration or player attributes"}}
	case errors.Is(err, model.ErrVersionConflict):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Session was modified concurrently, retry"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

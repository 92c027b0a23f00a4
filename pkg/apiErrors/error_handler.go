package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Report errors
	ErrInvalidQuarter     = "REP_001" // unknown quarter label
	ErrRefreshInProgress  = "REP_002" // a refresh is already running
	ErrReportGeneration   = "REP_003" // the report could not be produced
	ErrReportSource       = "REP_004" // the record source failed
	ErrReportRender       = "REP_005" // the report could not be rendered
	ErrReportNotAvailable = "REP_006" // no report generated yet

	// Validation errors
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Server errors
	ErrInternalServer  = "SRV_001"
	ErrExternalService = "SRV_003"
	ErrCommunication   = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidQuarter:      http.StatusBadRequest,
	ErrRefreshInProgress:   http.StatusConflict,
	ErrReportGeneration:    http.StatusInternalServerError,
	ErrReportSource:        http.StatusBadGateway,
	ErrReportRender:        http.StatusInternalServerError,
	ErrReportNotAvailable:  http.StatusServiceUnavailable,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError is the error body returned by every endpoint
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status of an error code, 500 when unknown
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError writes the standard error body with the status mapped from code
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an APIError
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

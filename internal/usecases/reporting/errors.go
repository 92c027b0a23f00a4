package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord = errors.New("invalid sales record")
	ErrSourceFailed  = errors.New("record source failed")
	ErrAggregation   = errors.New("aggregation failed")
	ErrRenderFailed  = errors.New("report rendering failed")
)

// Error codes reported in logs, metrics and API responses
const (
	CodeSourceFailed = "REPORT_SOURCE"
	CodeAggregation  = "REPORT_AGGREGATION"
	CodeRender       = "REPORT_RENDER"
	CodeCanceled     = "REPORT_CANCELED"
)

// RecordError identifies the record that stopped the aggregation
type RecordError struct {
	Index     int
	ProductID string
	Err       error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (product %q): %v", e.Index, e.ProductID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ReportError is returned by the Service when a report cannot be produced
type ReportError struct {
	Err     error  // kind, one of the Err* sentinels
	Code    string // code for logs and the API
	Details string
	Cause   error
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As
func (e *ReportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewReportError creates a ReportError whose details come from the cause
func NewReportError(kind error, code string, cause error) *ReportError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &ReportError{
		Err:     kind,
		Code:    code,
		Details: details,
		Cause:   cause,
	}
}

package reporting

import (
	"context"
	"io"
	"time"

	"github.com/vfg2006/quarterly-sales-report/internal/domain"
)

// RecordSource supplies the finite batch of sales records to aggregate
type RecordSource interface {
	// Records returns every record of the batch, in order. An empty batch is valid.
	Records(ctx context.Context) ([]domain.SalesRecord, error)
}

// Renderer writes a report to its destination
type Renderer interface {
	Render(w io.Writer, report *domain.QuarterlyReport) error
}

// MetricsRecorder receives pipeline measurements
type MetricsRecorder interface {
	ObserveGeneration(records int, duration time.Duration)
	IncFailure(code string)
}

// Reporter is the contract consumed by the CLI, the scheduler and the HTTP handlers
type Reporter interface {
	// Generate runs source -> aggregation -> view model
	Generate(ctx context.Context) (*domain.QuarterlyReport, error)

	// WriteText generates a report and renders it as text into w
	WriteText(ctx context.Context, w io.Writer) (*domain.QuarterlyReport, error)

	// Render renders an already generated report
	Render(w io.Writer, report *domain.QuarterlyReport) error
}

type noopMetrics struct{}

func (noopMetrics) ObserveGeneration(int, time.Duration) {}
func (noopMetrics) IncFailure(string)                   {}

package reporting

import (
	"context"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
	"github.com/vfg2006/quarterly-sales-report/pkg/log"
	"github.com/vfg2006/quarterly-sales-report/pkg/utils"
)

// Options configures the pipeline run by the Service
type Options struct {
	Strict bool
	Order  domain.DepartmentOrder
}

// Service runs the record source -> aggregation -> report pipeline
type Service struct {
	source   RecordSource
	renderer Renderer
	opts     Options
	validate *validator.Validate
	metrics  MetricsRecorder
	now      func() time.Time
	newID    func() (string, error)
}

// NewService creates the reporting service
func NewService(source RecordSource, renderer Renderer, opts Options) *Service {
	if opts.Order == "" {
		opts.Order = domain.DepartmentOrderFirstSeen
	}

	s := &Service{
		source:   source,
		renderer: renderer,
		opts:     opts,
		metrics:  noopMetrics{},
		now:      time.Now,
		newID:    utils.GenerateID,
	}
	if opts.Strict {
		s.validate = NewRecordValidator()
	}
	return s
}

// WithMetrics enables metric collection
func (s *Service) WithMetrics(metrics MetricsRecorder) *Service {
	if metrics != nil {
		s.metrics = metrics
	}
	return s
}

// Generate pulls the batch from the source and aggregates it into a report.
// Any failure aborts the run; no partial report is returned.
func (s *Service) Generate(ctx context.Context) (*domain.QuarterlyReport, error) {
	logger := log.ForContext(ctx)
	startedAt := s.now()

	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, s.fail(logger, ErrSourceFailed, CodeSourceFailed, errors.Wrap(err, "load sales records"))
	}

	if err := ctx.Err(); err != nil {
		return nil, s.fail(logger, err, CodeCanceled, nil)
	}

	agg, err := AggregateWithOptions(records, AggregateOptions{
		Strict:    s.opts.Strict,
		Validator: s.validate,
	})
	if err != nil {
		return nil, s.fail(logger, ErrAggregation, CodeAggregation, errors.Wrapf(err, "aggregate %d records", len(records)))
	}

	id, err := s.newID()
	if err != nil {
		// the report is still valid without an identifier
		logger.WithError(err).Warn("reporting: could not generate report id")
	}

	report := BuildReport(agg, BuildOptions{
		ID:          id,
		GeneratedAt: startedAt,
		Order:       s.opts.Order,
	})

	duration := s.now().Sub(startedAt)
	s.metrics.ObserveGeneration(agg.RecordCount(), duration)

	logger.WithFields(log.Fields{
		"report_id":   report.ID,
		"records":     report.RecordCount,
		"rows":        agg.Len(),
		"duration_ms": duration.Milliseconds(),
	}).Info("reporting: quarterly report generated")

	return report, nil
}

// WriteText generates a report and renders it into w
func (s *Service) WriteText(ctx context.Context, w io.Writer) (*domain.QuarterlyReport, error) {
	report, err := s.Generate(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.Render(w, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Render renders an existing report with the configured renderer
func (s *Service) Render(w io.Writer, report *domain.QuarterlyReport) error {
	if err := s.renderer.Render(w, report); err != nil {
		return s.fail(log.L, ErrRenderFailed, CodeRender, err)
	}
	return nil
}

func (s *Service) fail(logger log.Logger, kind error, code string, cause error) error {
	s.metrics.IncFailure(code)

	reportErr := NewReportError(kind, code, cause)
	logger.WithError(reportErr).WithField("code", code).Error("reporting: report generation failed")
	return reportErr
}

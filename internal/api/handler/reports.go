package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
	"github.com/vfg2006/quarterly-sales-report/internal/scheduler"
	"github.com/vfg2006/quarterly-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/quarterly-sales-report/pkg/apiErrors"
	"github.com/vfg2006/quarterly-sales-report/pkg/log"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type refreshResponse struct {
	ReportID string                  `json:"report_id"`
	Status   scheduler.RefreshStatus `json:"status"`
}

// GetQuarterlyReport returns the latest report as text, or as JSON with ?format=json.
// ?quarter=Q1..Q4 restricts the output to one quarter.
func GetQuarterlyReport(provider ReportProvider, renderer reporting.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format := strings.ToLower(r.URL.Query().Get("format"))
		if format == "" {
			format = formatText
		}
		if format != formatText && format != formatJSON {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "format must be text or json", map[string]string{"format": format})
			return
		}

		var quarter domain.Quarter
		if label := r.URL.Query().Get("quarter"); label != "" {
			q, err := domain.ParseQuarter(label)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidQuarter, err.Error(), map[string]string{"quarter": label})
				return
			}
			quarter = q
		}

		report, err := provider.Latest(r.Context())
		if err != nil {
			logger.WithError(err).Error("could not load the quarterly report")
			writeReportError(w, err)
			return
		}

		if quarter != "" {
			report = report.FilterQuarter(quarter)
		}

		if format == formatJSON {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(report); err != nil {
				logger.WithError(err).Error("error encoding quarterly report")
			}
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, report); err != nil {
			logger.WithError(err).Error("could not render the quarterly report")
			apiErrors.WriteError(w, apiErrors.ErrReportRender, "could not render report", nil)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("error writing quarterly report")
		}
	}
}

// RefreshQuarterlyReport regenerates the cached report
func RefreshQuarterlyReport(provider ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("manual quarterly report refresh requested")

		report, err := provider.Refresh(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrRefreshInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrRefreshInProgress, err.Error(), provider.Status())
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("manual quarterly report refresh failed")
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(refreshResponse{
			ReportID: report.ID,
			Status:   provider.Status(),
		})
		if err != nil {
			logrus.WithError(err).Error("error encoding refresh response")
		}
	}
}

// GetRefreshStatus reports the state of the last refresh
func GetRefreshStatus(provider ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(provider.Status()); err != nil {
			logrus.WithError(err).Error("error encoding refresh status")
		}
	}
}

func writeReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if !errors.As(err, &reportErr) {
		apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "could not generate report", nil)
		return
	}

	code := apiErrors.ErrReportGeneration
	if reportErr.Code == reporting.CodeSourceFailed {
		code = apiErrors.ErrReportSource
	}

	apiErrors.WriteError(w, code, reportErr.Err.Error(), map[string]string{"reason": reportErr.Code})
}

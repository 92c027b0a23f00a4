package handler

import (
	"context"

	"github.com/vfg2006/quarterly-sales-report/internal/domain"
	"github.com/vfg2006/quarterly-sales-report/internal/scheduler"
)

// ReportProvider serves the latest quarterly report and triggers refreshes
type ReportProvider interface {
	Latest(ctx context.Context) (*domain.QuarterlyReport, error)
	Refresh(ctx context.Context) (*domain.QuarterlyReport, error)
	Status() scheduler.RefreshStatus
}

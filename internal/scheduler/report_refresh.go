// Package scheduler contains the background jobs of the report service
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/quarterly-sales-report/internal/config"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
	"github.com/vfg2006/quarterly-sales-report/internal/usecases/reporting"
)

const latestReportKey = "quarterly-report:latest"

var ErrRefreshInProgress = errors.New("report refresh already running")

type ReportRefreshConfig struct {
	CronSchedule string
	Enabled      bool
	CacheTTL     time.Duration
}

// RefreshStatus describes the last refresh run
type RefreshStatus struct {
	Running         bool      `json:"running"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastReportID    string    `json:"last_report_id,omitempty"`
	LastError       string    `json:"last_error,omitempty"`
}

// ReportRefreshService regenerates the quarterly report on a cron schedule and
// keeps the latest one in memory for the HTTP handlers
type ReportRefreshService struct {
	scheduler *gocron.Scheduler
	reporter  reporting.Reporter
	cache     *cache.Cache
	config    ReportRefreshConfig

	syncMutex sync.Mutex
	status    RefreshStatus
}

func NewReportRefreshService(reporter reporting.Reporter, cfg *config.Config) *ReportRefreshService {
	refreshConfig := ReportRefreshConfig{
		CronSchedule: cfg.ReportRefresh.CronSchedule,
		Enabled:      cfg.ReportRefresh.Enabled,
		CacheTTL:     cfg.Report.CacheTTL,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"cache_ttl":     refreshConfig.CacheTTL.String(),
	}).Debug("report refresh scheduler configured")

	return &ReportRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		cache:     cache.New(refreshConfig.CacheTTL, 2*refreshConfig.CacheTTL),
		config:    refreshConfig,
	}
}

func (s *ReportRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("report refresh cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting report refresh cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInProgress) {
			logrus.WithError(err).Error("scheduled report refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule report refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping report refresh cron")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh generates a new report and replaces the cached one.
// Only one refresh runs at a time; concurrent calls get ErrRefreshInProgress.
func (s *ReportRefreshService) Refresh(ctx context.Context) (*domain.QuarterlyReport, error) {
	s.syncMutex.Lock()
	if s.status.Running {
		s.syncMutex.Unlock()
		logrus.Warn("report refresh already running")
		return nil, ErrRefreshInProgress
	}
	s.status.Running = true
	s.status.LastStartedAt = time.Now()
	s.syncMutex.Unlock()

	report, err := s.reporter.Generate(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.status.Running = false
	s.status.LastCompletedAt = time.Now()
	if err != nil {
		s.status.LastError = err.Error()
		return nil, err
	}

	s.status.LastError = ""
	s.status.LastReportID = report.ID
	s.cache.SetDefault(latestReportKey, report)

	logrus.WithField("report_id", report.ID).Info("quarterly report refreshed")

	return report, nil
}

// Latest returns the cached report, generating one when the cache is empty or expired
func (s *ReportRefreshService) Latest(ctx context.Context) (*domain.QuarterlyReport, error) {
	if cached, found := s.cache.Get(latestReportKey); found {
		return cached.(*domain.QuarterlyReport), nil
	}

	report, err := s.Refresh(ctx)
	if errors.Is(err, ErrRefreshInProgress) {
		return s.reporter.Generate(ctx)
	}
	return report, err
}

// Status returns a snapshot of the last refresh
func (s *ReportRefreshService) Status() RefreshStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.status
}

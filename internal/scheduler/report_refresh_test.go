package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/quarterly-sales-report/internal/config"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
	"github.com/vfg2006/quarterly-sales-report/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		Report:        config.Report{CacheTTL: time.Minute},
		ReportRefresh: config.ReportRefresh{CronSchedule: "*/5 * * * *", Enabled: enabled},
	}
}

func TestReportRefreshService_Refresh(t *testing.T) {
	generateErr := errors.New("source unavailable")

	tests := []struct {
		name     string
		setup    func(reporter *mocks.MockReporter)
		validate func(t *testing.T, s *ReportRefreshService, report *domain.QuarterlyReport, err error)
	}{
		{
			name: "caches the generated report",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().Generate(gomock.Any()).Return(&domain.QuarterlyReport{ID: "abc123"}, nil)
			},
			validate: func(t *testing.T, s *ReportRefreshService, report *domain.QuarterlyReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "abc123", report.ID)

				cached, found := s.cache.Get(latestReportKey)
				require.True(t, found)
				assert.Same(t, report, cached)

				status := s.Status()
				assert.False(t, status.Running)
				assert.Equal(t, "abc123", status.LastReportID)
				assert.Empty(t, status.LastError)
				assert.False(t, status.LastCompletedAt.Before(status.LastStartedAt))
			},
		},
		{
			name: "keeps the cache untouched on failure",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().Generate(gomock.Any()).Return(nil, generateErr)
			},
			validate: func(t *testing.T, s *ReportRefreshService, report *domain.QuarterlyReport, err error) {
				assert.ErrorIs(t, err, generateErr)
				assert.Nil(t, report)

				_, found := s.cache.Get(latestReportKey)
				assert.False(t, found)
				assert.Equal(t, generateErr.Error(), s.Status().LastError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := mocks.NewMockReporter(ctrl)
			tt.setup(reporter)

			s := NewReportRefreshService(reporter, testConfig(false))
			report, err := s.Refresh(context.Background())
			tt.validate(t, s, report, err)
		})
	}
}

func TestReportRefreshService_RefreshInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	reporter.EXPECT().Generate(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.QuarterlyReport, error) {
		close(started)
		<-release
		return &domain.QuarterlyReport{ID: "first"}, nil
	})

	s := NewReportRefreshService(reporter, testConfig(false))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.Refresh(context.Background())
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, s.Status().Running)

	_, err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrRefreshInProgress)

	close(release)
	wg.Wait()
	assert.False(t, s.Status().Running)
}

func TestReportRefreshService_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	reporter.EXPECT().Generate(gomock.Any()).Return(&domain.QuarterlyReport{ID: "cached"}, nil).Times(1)

	s := NewReportRefreshService(reporter, testConfig(false))

	first, err := s.Latest(context.Background())
	require.NoError(t, err)
	second, err := s.Latest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "cached", first.ID)
	assert.Same(t, first, second)
}

func TestReportRefreshService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	s := NewReportRefreshService(reporter, testConfig(false))

	assert.NoError(t, s.Start(context.Background()))
	assert.Empty(t, s.scheduler.Jobs())
}

func TestReportRefreshService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	cfg := testConfig(true)
	cfg.ReportRefresh.CronSchedule = "every now and then"
	s := NewReportRefreshService(reporter, cfg)

	assert.Error(t, s.Start(context.Background()))
}

func TestReportRefreshService_StartStopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().Generate(gomock.Any()).Return(&domain.QuarterlyReport{}, nil).AnyTimes()

	s := NewReportRefreshService(reporter, testConfig(true))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	assert.Len(t, s.scheduler.Jobs(), 1)
	assert.True(t, s.scheduler.IsRunning())

	cancel()
	assert.Eventually(t, func() bool { return !s.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
}

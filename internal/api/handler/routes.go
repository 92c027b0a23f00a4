package handler

import (
	"net/http"

	"github.com/vfg2006/quarterly-sales-report/internal/api/handler/router"
	"github.com/vfg2006/quarterly-sales-report/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(provider ReportProvider, renderer reporting.Renderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/quarterly",
			Method:  http.MethodGet,
			Handler: GetQuarterlyReport(provider, renderer),
		},
		{
			Path:    "/v1/reports/quarterly/refresh",
			Method:  http.MethodPost,
			Handler: RefreshQuarterlyReport(provider),
		},
		{
			Path:    "/v1/reports/quarterly/status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(provider),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

package cli

import (
	"github.com/vfg2006/quarterly-sales-report/internal/config"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
	"github.com/vfg2006/quarterly-sales-report/internal/usecases/generating"
	"github.com/vfg2006/quarterly-sales-report/internal/usecases/reporting"
)

// newReportService wires the generator, renderer and reporting service from the configuration
func newReportService(cfg *config.Config) (*reporting.Service, error) {
	generator, err := generating.NewGenerator(generating.Options{
		Count:   cfg.Report.RecordCount,
		Year:    cfg.Report.Year,
		Seed:    cfg.Report.Seed,
		Catalog: domain.DefaultCatalog(),
	})
	if err != nil {
		return nil, err
	}

	return reporting.NewService(generator, reporting.NewTextRenderer(cfg.Report.CurrencySymbol), reporting.Options{
		Strict: cfg.Report.Strict,
		Order:  domain.DepartmentOrder(cfg.Report.DepartmentOrder),
	}), nil
}

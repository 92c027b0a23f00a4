package reporting

import (
	"time"

	"github.com/vfg2006/quarterly-sales-report/internal/domain"
)

// BuildOptions describes the metadata and ordering of a built report
type BuildOptions struct {
	ID          string
	GeneratedAt time.Time
	Order       domain.DepartmentOrder
}

// BuildReport turns an aggregation into the view model, one section per quarter in Q1..Q4 order
func BuildReport(agg *Aggregation, opts BuildOptions) *domain.QuarterlyReport {
	if agg == nil {
		agg = NewAggregation()
	}

	report := &domain.QuarterlyReport{
		ID:          opts.ID,
		GeneratedAt: opts.GeneratedAt,
		RecordCount: agg.RecordCount(),
		Sections:    make([]domain.QuarterSection, 0, len(domain.Quarters)),
	}

	for _, q := range domain.Quarters {
		section := domain.QuarterSection{Quarter: q}

		if agg.HasQuarter(q) {
			section.HasData = true
			for _, dept := range agg.Departments(q, opts.Order) {
				totals, _ := agg.Department(q, dept)
				section.Rows = append(section.Rows, domain.NewReportRow(dept, totals))
			}

			quarterTotals, _ := agg.Quarter(q)
			total := domain.NewReportRow("", quarterTotals)
			section.Total = &total
		}

		report.Sections = append(report.Sections, section)
	}

	return report
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepartmentOrder controls how departments are listed within a quarter
type DepartmentOrder string

const (
	// DepartmentOrderFirstSeen keeps the order in which departments first appeared in the input
	DepartmentOrderFirstSeen DepartmentOrder = "first-seen"
	// DepartmentOrderSorted lists departments alphabetically
	DepartmentOrderSorted DepartmentOrder = "sorted"
)

// QuarterlyReport is the render-ready view of an aggregation
type QuarterlyReport struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	RecordCount int              `json:"record_count"`
	Sections    []QuarterSection `json:"sections"`
}

// QuarterSection holds one quarter of the report. Rows and Total are empty when HasData is false.
type QuarterSection struct {
	Quarter Quarter     `json:"quarter"`
	HasData bool        `json:"has_data"`
	Rows    []ReportRow `json:"rows,omitempty"`
	Total   *ReportRow  `json:"total,omitempty"`
}

// ReportRow is one department line or the quarter total line
type ReportRow struct {
	Department       string          `json:"department,omitempty"`
	Sales            decimal.Decimal `json:"sales"`
	Profit           decimal.Decimal `json:"profit"`
	ProfitPercentage decimal.Decimal `json:"profit_percentage"`
}

// NewReportRow derives the profit percentage from the totals
func NewReportRow(department string, totals Totals) ReportRow {
	return ReportRow{
		Department:       department,
		Sales:            totals.Sales,
		Profit:           totals.Profit,
		ProfitPercentage: totals.ProfitPercentage(),
	}
}

// Section returns the section for a quarter, if present
func (r *QuarterlyReport) Section(q Quarter) (QuarterSection, bool) {
	if r == nil {
		return QuarterSection{}, false
	}
	for _, s := range r.Sections {
		if s.Quarter == q {
			return s, true
		}
	}
	return QuarterSection{}, false
}

// FilterQuarter returns a copy of the report containing only the given quarter
func (r *QuarterlyReport) FilterQuarter(q Quarter) *QuarterlyReport {
	filtered := *r
	filtered.Sections = nil
	if s, ok := r.Section(q); ok {
		filtered.Sections = []QuarterSection{s}
	}
	return &filtered
}

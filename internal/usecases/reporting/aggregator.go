package reporting

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
)

// Aggregation holds the department and quarter totals of one batch.
// It is built by Aggregate and not mutated afterwards; Merge returns a new value.
type Aggregation struct {
	departments map[domain.AggregationKey]domain.Totals
	quarters    map[domain.Quarter]domain.Totals
	// departments of each quarter in the order they were first seen
	order   map[domain.Quarter][]string
	records int
}

// AggregateOptions tunes Aggregate. The zero value is the permissive default.
type AggregateOptions struct {
	// Strict rejects records that break the generator contract (negative amounts, zero quantity, ...)
	Strict    bool
	Validator *validator.Validate
}

// NewAggregation returns an empty aggregation, the identity element of Merge
func NewAggregation() *Aggregation {
	return &Aggregation{
		departments: make(map[domain.AggregationKey]domain.Totals),
		quarters:    make(map[domain.Quarter]domain.Totals),
		order:       make(map[domain.Quarter][]string),
	}
}

// Aggregate folds the records into per (quarter, department) and per quarter totals.
// Records are accepted as they are: negative quantities or prices are summed without validation.
func Aggregate(records []domain.SalesRecord) (*Aggregation, error) {
	return AggregateWithOptions(records, AggregateOptions{})
}

// AggregateWithOptions is Aggregate with optional strict validation.
// The first offending record aborts the fold and no partial result is returned.
func AggregateWithOptions(records []domain.SalesRecord, opts AggregateOptions) (*Aggregation, error) {
	validate := opts.Validator
	if opts.Strict && validate == nil {
		validate = NewRecordValidator()
	}

	agg := NewAggregation()
	for i, record := range records {
		if opts.Strict {
			if err := validate.Struct(record); err != nil {
				return nil, &RecordError{
					Index:     i,
					ProductID: record.ProductID,
					Err:       fmt.Errorf("%w: %v", ErrInvalidRecord, err),
				}
			}
		}

		if err := agg.add(record); err != nil {
			return nil, &RecordError{Index: i, ProductID: record.ProductID, Err: err}
		}
	}

	return agg, nil
}

func (a *Aggregation) add(record domain.SalesRecord) error {
	quarter, err := domain.ClassifyQuarter(int(record.DateSold.Month()))
	if err != nil {
		return err
	}

	line := domain.Totals{
		Sales:  record.LineSales(),
		Profit: record.LineProfit(),
	}

	a.addTotals(domain.AggregationKey{Quarter: quarter, Department: record.DepartmentName}, line)
	a.records++
	return nil
}

func (a *Aggregation) addTotals(key domain.AggregationKey, line domain.Totals) {
	existing, exists := a.departments[key]
	if !exists {
		a.order[key.Quarter] = append(a.order[key.Quarter], key.Department)
	}
	a.departments[key] = existing.Add(line)
	a.quarters[key.Quarter] = a.quarters[key.Quarter].Add(line)
}

// Merge returns the key-wise sum of both aggregations. Neither operand is modified.
// Departments keep the receiver's first-seen order; departments only present in other are appended.
func (a *Aggregation) Merge(other *Aggregation) *Aggregation {
	merged := a.clone()
	if other == nil {
		return merged
	}

	for _, q := range domain.Quarters {
		for _, dept := range other.order[q] {
			key := domain.AggregationKey{Quarter: q, Department: dept}
			merged.addTotals(key, other.departments[key])
		}
	}
	merged.records += other.records

	return merged
}

func (a *Aggregation) clone() *Aggregation {
	c := NewAggregation()
	if a == nil {
		return c
	}
	for k, v := range a.departments {
		c.departments[k] = v
	}
	for k, v := range a.quarters {
		c.quarters[k] = v
	}
	for k, v := range a.order {
		c.order[k] = append([]string(nil), v...)
	}
	c.records = a.records
	return c
}

// Department returns the totals of one report row
func (a *Aggregation) Department(q domain.Quarter, department string) (domain.Totals, bool) {
	t, ok := a.departments[domain.AggregationKey{Quarter: q, Department: department}]
	return t, ok
}

// Quarter returns the totals across every department of the quarter
func (a *Aggregation) Quarter(q domain.Quarter) (domain.Totals, bool) {
	t, ok := a.quarters[q]
	return t, ok
}

// HasQuarter reports whether at least one record fell into the quarter
func (a *Aggregation) HasQuarter(q domain.Quarter) bool {
	return len(a.order[q]) > 0
}

// Departments lists the departments observed in the quarter
func (a *Aggregation) Departments(q domain.Quarter, order domain.DepartmentOrder) []string {
	depts := append([]string(nil), a.order[q]...)
	if order == domain.DepartmentOrderSorted {
		sort.Strings(depts)
	}
	return depts
}

// DepartmentTotals returns a copy of the (quarter, department) totals
func (a *Aggregation) DepartmentTotals() map[domain.AggregationKey]domain.Totals {
	out := make(map[domain.AggregationKey]domain.Totals, len(a.departments))
	for k, v := range a.departments {
		out[k] = v
	}
	return out
}

// QuarterTotals returns a copy of the per quarter totals
func (a *Aggregation) QuarterTotals() map[domain.Quarter]domain.Totals {
	out := make(map[domain.Quarter]domain.Totals, len(a.quarters))
	for k, v := range a.quarters {
		out[k] = v
	}
	return out
}

// RecordCount is the number of records folded in
func (a *Aggregation) RecordCount() int {
	return a.records
}

// Len is the number of report rows
func (a *Aggregation) Len() int {
	return len(a.departments)
}

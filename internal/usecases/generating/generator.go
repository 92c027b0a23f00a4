package generating

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
	"github.com/vfg2006/quarterly-sales-report/pkg/log"
	"github.com/vfg2006/quarterly-sales-report/pkg/utils"
)

const (
	DefaultRecordCount = 1000
	DefaultYear        = 2023
)

var (
	ErrInvalidCount = errors.New("record count must not be negative")
	ErrEmptyCatalog = errors.New("catalog has no departments, sites, sizes or colors")
)

// Options configures the generated batch
type Options struct {
	Count int
	Year  int
	// Seed makes the batch reproducible. Zero picks a new seed on every call.
	Seed    int64
	Catalog domain.Catalog
}

// Generator produces synthetic sales records for a retail catalog
type Generator struct {
	opts Options
	now  func() time.Time
}

// NewGenerator validates the options and fills in defaults
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, opts.Count)
	}
	if opts.Year == 0 {
		opts.Year = DefaultYear
	}
	if opts.Catalog.Departments == nil && opts.Catalog.Sites == nil {
		opts.Catalog = domain.DefaultCatalog()
	}
	if opts.Catalog.IsEmpty() {
		return nil, ErrEmptyCatalog
	}

	return &Generator{opts: opts, now: time.Now}, nil
}

// Records generates the whole batch. It stops early when ctx is done.
func (g *Generator) Records(ctx context.Context) ([]domain.SalesRecord, error) {
	seed := g.opts.Seed
	if seed == 0 {
		seed = g.now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	records := make([]domain.SalesRecord, 0, g.opts.Count)
	for i := 0; i < g.opts.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, g.record(rng))
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"records": len(records),
		"seed":    seed,
	}).Debug("generating: sales records generated")

	return records, nil
}

func (g *Generator) record(rng *rand.Rand) domain.SalesRecord {
	catalog := g.opts.Catalog

	deptIndex := rng.Intn(len(catalog.Departments))
	dept := catalog.Departments[deptIndex]

	productID := fmt.Sprintf("%s-%d%02d-%s-%s-%s",
		dept.Code,
		deptIndex+1,
		1+rng.Intn(99),
		catalog.Sizes[rng.Intn(len(catalog.Sizes))],
		catalog.Colors[rng.Intn(len(catalog.Colors))],
		catalog.Sites[rng.Intn(len(catalog.Sites))].Code,
	)

	quantity := 1 + rng.Intn(100)

	// whole dollars in [25, 300) plus a random fraction
	unitPrice := utils.RoundCents(decimal.NewFromInt(int64(25 + rng.Intn(275))).
		Add(decimal.NewFromFloat(rng.Float64())))

	discount := decimal.New(int64(5+rng.Intn(16)), -2)
	baseCost := utils.RoundCents(unitPrice.Mul(decimal.NewFromInt(1).Sub(discount)))

	return domain.SalesRecord{
		DateSold:       time.Date(g.opts.Year, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
		DepartmentName: dept.Name,
		ProductID:      productID,
		QuantitySold:   quantity,
		UnitPrice:      unitPrice,
		BaseCost:       baseCost,
		VolumeDiscount: quantity / 10,
	}
}

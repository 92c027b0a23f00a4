package reporting

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
)

func newRecord(month int, department string, qty int, price, cost string) domain.SalesRecord {
	return domain.SalesRecord{
		DateSold:       time.Date(2023, time.Month(month), 15, 0, 0, 0, 0, time.UTC),
		DepartmentName: department,
		ProductID:      fmt.Sprintf("TEST-%02d-%s", month, department),
		QuantitySold:   qty,
		UnitPrice:      decimal.RequireFromString(price),
		BaseCost:       decimal.RequireFromString(cost),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg, err := Aggregate(nil)
	require.NoError(t, err)

	assert.Empty(t, agg.DepartmentTotals())
	assert.Empty(t, agg.QuarterTotals())
	assert.Equal(t, 0, agg.RecordCount())
	for _, q := range domain.Quarters {
		assert.False(t, agg.HasQuarter(q))
	}
}

func TestAggregate_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.SalesRecord
		validate func(t *testing.T, agg *Aggregation)
	}{
		{
			name:    "single footwear record in february",
			records: []domain.SalesRecord{newRecord(2, "Footwear", 10, "50.0", "30.0")},
			validate: func(t *testing.T, agg *Aggregation) {
				totals, ok := agg.Department(domain.Q1, "Footwear")
				require.True(t, ok)
				assert.True(t, dec("500").Equal(totals.Sales))
				assert.True(t, dec("200").Equal(totals.Profit))
				assert.Equal(t, "40.00", totals.ProfitPercentage().StringFixed(2))
			},
		},
		{
			name: "two departments in the second quarter",
			records: []domain.SalesRecord{
				newRecord(4, "Men's Wear", 5, "100", "60"),
				newRecord(6, "Women's Wear", 2, "200", "150"),
			},
			validate: func(t *testing.T, agg *Aggregation) {
				q2, ok := agg.Quarter(domain.Q2)
				require.True(t, ok)
				assert.True(t, dec("900").Equal(q2.Sales))
				assert.True(t, dec("300").Equal(q2.Profit))
				assert.Equal(t, "33.33", q2.ProfitPercentage().StringFixed(2))
				assert.Equal(t, []string{"Men's Wear", "Women's Wear"}, agg.Departments(domain.Q2, domain.DepartmentOrderFirstSeen))
			},
		},
		{
			name: "same quarter and department accumulate",
			records: []domain.SalesRecord{
				newRecord(7, "Accessories", 3, "10.50", "8.25"),
				newRecord(8, "Accessories", 1, "99.99", "80.00"),
				newRecord(9, "Accessories", 4, "1.10", "1.00"),
			},
			validate: func(t *testing.T, agg *Aggregation) {
				totals, ok := agg.Department(domain.Q3, "Accessories")
				require.True(t, ok)
				// 31.50 + 99.99 + 4.40
				assert.True(t, dec("135.89").Equal(totals.Sales))
				// 3*(10.50-8.25) + (99.99-80.00) + 4*(1.10-1.00)
				assert.True(t, dec("27.14").Equal(totals.Profit))
				assert.Equal(t, 1, agg.Len())
				assert.Equal(t, 3, agg.RecordCount())
			},
		},
		{
			name:    "price equal to cost yields zero profit",
			records: []domain.SalesRecord{newRecord(11, "Outerwear", 7, "40", "40")},
			validate: func(t *testing.T, agg *Aggregation) {
				totals, ok := agg.Department(domain.Q4, "Outerwear")
				require.True(t, ok)
				assert.True(t, totals.Profit.IsZero())
				assert.Equal(t, "0.00", totals.ProfitPercentage().StringFixed(2))
			},
		},
		{
			name: "negative quantity is accepted arithmetically",
			records: []domain.SalesRecord{
				newRecord(1, "Underwear", -2, "10", "5"),
			},
			validate: func(t *testing.T, agg *Aggregation) {
				totals, ok := agg.Department(domain.Q1, "Underwear")
				require.True(t, ok)
				assert.True(t, dec("-20").Equal(totals.Sales))
				assert.True(t, dec("-10").Equal(totals.Profit))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := Aggregate(tt.records)
			require.NoError(t, err)
			tt.validate(t, agg)
		})
	}
}

func TestAggregate_QuarterTotalsMatchDepartmentSums(t *testing.T) {
	records := randomRecords(rand.New(rand.NewSource(42)), 500)

	agg, err := Aggregate(records)
	require.NoError(t, err)

	for _, q := range domain.Quarters {
		if !agg.HasQuarter(q) {
			continue
		}
		sum := domain.Totals{}
		for _, dept := range agg.Departments(q, domain.DepartmentOrderFirstSeen) {
			totals, _ := agg.Department(q, dept)
			sum = sum.Add(totals)
		}
		quarter, _ := agg.Quarter(q)
		assert.True(t, quarter.Equal(sum), "quarter %s", q)
	}
}

func TestAggregate_IsDeterministic(t *testing.T) {
	records := randomRecords(rand.New(rand.NewSource(7)), 200)

	first, err := Aggregate(records)
	require.NoError(t, err)
	second, err := Aggregate(records)
	require.NoError(t, err)

	assertSameAggregation(t, first, second)
}

func TestAggregation_MergeEqualsAggregateOfConcatenation(t *testing.T) {
	rng := rand.New(rand.NewSource(2023))

	for i := 0; i < 50; i++ {
		t.Run(fmt.Sprintf("iteration_%d", i), func(t *testing.T) {
			records := randomRecords(rng, rng.Intn(120))
			split := 0
			if len(records) > 0 {
				split = rng.Intn(len(records) + 1)
			}

			left, err := Aggregate(records[:split])
			require.NoError(t, err)
			right, err := Aggregate(records[split:])
			require.NoError(t, err)
			whole, err := Aggregate(records)
			require.NoError(t, err)

			assertSameAggregation(t, whole, left.Merge(right))
			assertSameAggregation(t, whole, right.Merge(left))
		})
	}
}

func TestAggregation_MergeDoesNotMutateOperands(t *testing.T) {
	left, err := Aggregate([]domain.SalesRecord{newRecord(2, "Footwear", 1, "10", "5")})
	require.NoError(t, err)
	right, err := Aggregate([]domain.SalesRecord{newRecord(2, "Footwear", 1, "20", "5")})
	require.NoError(t, err)

	merged := left.Merge(right)

	totals, _ := left.Department(domain.Q1, "Footwear")
	assert.True(t, dec("10").Equal(totals.Sales))
	mergedTotals, _ := merged.Department(domain.Q1, "Footwear")
	assert.True(t, dec("30").Equal(mergedTotals.Sales))
	assert.Equal(t, 2, merged.RecordCount())

	// identity element
	assertSameAggregation(t, left, left.Merge(NewAggregation()))
	assertSameAggregation(t, left, left.Merge(nil))
}

func TestAggregation_DepartmentOrder(t *testing.T) {
	agg, err := Aggregate([]domain.SalesRecord{
		newRecord(1, "Sportswear", 1, "1", "1"),
		newRecord(2, "Accessories", 1, "1", "1"),
		newRecord(3, "Sportswear", 1, "1", "1"),
		newRecord(3, "Footwear", 1, "1", "1"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sportswear", "Accessories", "Footwear"}, agg.Departments(domain.Q1, domain.DepartmentOrderFirstSeen))
	assert.Equal(t, []string{"Accessories", "Footwear", "Sportswear"}, agg.Departments(domain.Q1, domain.DepartmentOrderSorted))
}

func TestAggregateWithOptions_Strict(t *testing.T) {
	tests := []struct {
		name    string
		record  domain.SalesRecord
		wantErr bool
	}{
		{name: "valid record", record: newRecord(5, "Footwear", 3, "10", "8")},
		{name: "negative quantity", record: newRecord(5, "Footwear", -3, "10", "8"), wantErr: true},
		{name: "zero quantity", record: newRecord(5, "Footwear", 0, "10", "8"), wantErr: true},
		{name: "negative price", record: newRecord(5, "Footwear", 1, "-10", "8"), wantErr: true},
		{name: "negative cost", record: newRecord(5, "Footwear", 1, "10", "-8"), wantErr: true},
		{name: "missing department", record: newRecord(5, "", 1, "10", "8"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []domain.SalesRecord{newRecord(1, "Accessories", 1, "5", "4"), tt.record}

			agg, err := AggregateWithOptions(records, AggregateOptions{Strict: true})
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, 2, agg.RecordCount())
				return
			}

			assert.Nil(t, agg)
			assert.ErrorIs(t, err, ErrInvalidRecord)

			var recordErr *RecordError
			require.ErrorAs(t, err, &recordErr)
			assert.Equal(t, 1, recordErr.Index)
			assert.Equal(t, tt.record.ProductID, recordErr.ProductID)

			// the permissive default folds the same batch
			_, err = Aggregate(records)
			assert.NoError(t, err)
		})
	}
}

func randomRecords(rng *rand.Rand, n int) []domain.SalesRecord {
	departments := []string{"Men's Wear", "Women's Wear", "Footwear", "Accessories", "Outerwear"}
	records := make([]domain.SalesRecord, 0, n)
	for i := 0; i < n; i++ {
		price := decimal.New(int64(2500+rng.Intn(27500)), -2)
		cost := price.Mul(decimal.New(int64(80+rng.Intn(16)), -2)).Round(2)
		records = append(records, domain.SalesRecord{
			DateSold:       time.Date(2023, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
			DepartmentName: departments[rng.Intn(len(departments))],
			ProductID:      fmt.Sprintf("P-%d", i),
			QuantitySold:   1 + rng.Intn(100),
			UnitPrice:      price,
			BaseCost:       cost,
		})
	}
	return records
}

func assertSameAggregation(t *testing.T, expected, actual *Aggregation) {
	t.Helper()

	expectedDepts := expected.DepartmentTotals()
	actualDepts := actual.DepartmentTotals()
	require.Len(t, actualDepts, len(expectedDepts))
	for key, totals := range expectedDepts {
		got, ok := actualDepts[key]
		require.True(t, ok, "missing %v", key)
		assert.True(t, totals.Equal(got), "%v: expected %v got %v", key, totals, got)
	}

	expectedQuarters := expected.QuarterTotals()
	actualQuarters := actual.QuarterTotals()
	require.Len(t, actualQuarters, len(expectedQuarters))
	for q, totals := range expectedQuarters {
		assert.True(t, totals.Equal(actualQuarters[q]), "quarter %s", q)
	}

	assert.Equal(t, expected.RecordCount(), actual.RecordCount())
}

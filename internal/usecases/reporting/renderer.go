package reporting

import (
	"fmt"
	"io"
	"text/template"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/quarterly-sales-report/internal/domain"
	"github.com/vfg2006/quarterly-sales-report/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrencySymbol = "$"

const reportTemplate = `Quarterly Sales Report
----------------------
{{range .Sections}}{{.Quarter}}:
{{if .HasData}}{{range .Rows}}  Department: {{.Department}}, Sales: {{currency .Sales}}, Profit: {{currency .Profit}}, Profit Percentage: {{percent .ProfitPercentage}}
{{end}}{{with .Total}}  Total Sales: {{currency .Sales}}, Total Profit: {{currency .Profit}}, Total Profit Percentage: {{percent .ProfitPercentage}}
{{end}}{{else}}  No sales data available.
{{end}}{{end}}`

// TextRenderer prints the report in the classic console layout
type TextRenderer struct {
	symbol   string
	printer  *message.Printer
	template *template.Template
}

// NewTextRenderer creates a renderer using the given currency symbol and en-US digit grouping
func NewTextRenderer(currencySymbol string) *TextRenderer {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	r := &TextRenderer{
		symbol:  currencySymbol,
		printer: message.NewPrinter(language.AmericanEnglish),
	}

	r.template = template.Must(template.New("quarterly-report").Funcs(template.FuncMap{
		"currency": r.FormatCurrency,
		"percent":  FormatPercentage,
	}).Parse(reportTemplate))

	return r
}

func (r *TextRenderer) Render(w io.Writer, report *domain.QuarterlyReport) error {
	if report == nil {
		return fmt.Errorf("report is nil")
	}

	if err := r.template.Execute(w, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// FormatCurrency rounds to cents and prints the symbol before the grouped amount, e.g. -$1,234.50
func (r *TextRenderer) FormatCurrency(amount decimal.Decimal) string {
	rounded := utils.RoundCents(amount)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	return sign + r.symbol + r.printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatPercentage prints two decimals followed by a percent sign
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

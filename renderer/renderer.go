package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// reports holds every report template, named after its file.
var reports = template.Must(template.New("").ParseFS(templates, "*.txt"))

// RenderInvestmentReport renders the investment statement: purchase, annual
// return, principal and current value of every investment.
func RenderInvestmentReport(r *Investments) string {
	return renderTemplate("investment_report.txt", r)
}

// RenderFutureValueReport renders the projection of every investment one and five years ahead.
func RenderFutureValueReport(r *Investments) string {
	return renderTemplate("future_value_report.txt", r)
}

// renderTemplate executes a report template. Errors are rendered in place of the report.
func renderTemplate(name string, data any) string {
	var b strings.Builder
	if err := reports.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

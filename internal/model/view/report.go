package view

import (
	"fmt"
	"strings"

	"max.ks1230/gastos-client/internal/entity/expense"
)

func MonthlyReportText(report expense.MonthlyReport) string {
	res := []string{fmt.Sprintf("Relatório %02d/%d", report.Month, report.Year), ""}
	for _, rec := range report.ByCategory {
		name := rec.Name
		if name == "" {
			name = Uncategorized
		}
		res = append(res, fmt.Sprintf("%s: %s (%d)", name, FormatCurrency(rec.Total), rec.Number))
	}
	res = append(res, "", "Total: "+FormatCurrency(report.Total))
	return strings.Join(res, "\n")
}

// AnnualReportText lists only the months the backend returned.
func AnnualReportText(report expense.AnnualReport) string {
	res := []string{fmt.Sprintf("Relatório %d", report.Year), ""}
	total := expense.Total(nil)
	for _, rec := range report.Months {
		res = append(res, fmt.Sprintf("%02d: %s (%d)", rec.Month, FormatCurrency(rec.Total), rec.Number))
		total = total.Add(rec.Total)
	}
	res = append(res, "", "Total: "+FormatCurrency(total))
	return strings.Join(res, "\n")
}

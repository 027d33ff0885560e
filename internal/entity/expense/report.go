package expense

import "github.com/shopspring/decimal"

type CategoryTotal struct {
	Name   string          `json:"nome"`
	Color  string          `json:"cor"`
	Total  decimal.Decimal `json:"total"`
	Number int             `json:"quantidade"`
}

// MonthlyReport is GET /relatorio/mensal/{ano}/{mes}.
type MonthlyReport struct {
	Month      int             `json:"mes"`
	Year       int             `json:"ano"`
	Total      decimal.Decimal `json:"total"`
	ByCategory []CategoryTotal `json:"por_categoria"`
	Expenses   []Expense       `json:"gastos"`
}

type MonthTotal struct {
	Month  int             `json:"mes"`
	Total  decimal.Decimal `json:"total"`
	Number int             `json:"quantidade"`
}

// AnnualReport is GET /relatorio/anual/{ano}.
type AnnualReport struct {
	Year   int          `json:"ano"`
	Months []MonthTotal `json:"meses"`
}

// Health is GET /health.
type Health struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	Categories *int   `json:"categorias,omitempty"`
	Timestamp  string `json:"timestamp"`
}

package expense

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultColor = "#3498db"
	DefaultIcon  = "💳"
)

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Color     string `json:"cor"`
	CreatedAt string `json:"criado_em,omitempty"`
}

type PaymentType struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Icon      string `json:"icone"`
	Color     string `json:"cor"`
	CreatedAt string `json:"criado_em,omitempty"`
}

// Label is how a payment type shows up in pickers: icon first.
func (p PaymentType) Label() string {
	if p.Icon == "" {
		return p.Name
	}
	return p.Icon + " " + p.Name
}

// Expense is a record as the backend returns it, with category and payment
// type denormalized into the document.
type Expense struct {
	ID            string          `json:"id"`
	Description   string          `json:"descricao"`
	Amount        decimal.Decimal `json:"valor"`
	Date          Date            `json:"data_gasto"`
	CategoryID    string          `json:"categoria_id,omitempty"`
	PaymentTypeID string          `json:"tipo_pagamento_id,omitempty"`
	Category      *Category       `json:"categoria,omitempty"`
	PaymentType   *PaymentType    `json:"tipo_pagamento,omitempty"`
	CreatedAt     string          `json:"criado_em,omitempty"`
}

// CategoryName returns the embedded category name, or "" for uncategorized records.
func (e Expense) CategoryName() string {
	if e.Category == nil {
		return ""
	}
	return e.Category.Name
}

// SortByDateDesc orders exps in place, newest first. Records on the same day
// keep their relative order.
func SortByDateDesc(exps []Expense) {
	sort.SliceStable(exps, func(i, j int) bool {
		return exps[i].Date.After(exps[j].Date.Time)
	})
}

// Total sums the amounts; an empty slice sums to zero.
func Total(exps []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range exps {
		total = total.Add(exp.Amount)
	}
	return total
}

// Between keeps the records dated in [from, to).
func Between(exps []Expense, from, to time.Time) []Expense {
	res := make([]Expense, 0)
	for _, exp := range exps {
		if !exp.Date.Before(from) && exp.Date.Before(to) {
			res = append(res, exp)
		}
	}
	return res
}

// FindCategory matches ref against ids first, then names ignoring case.
func FindCategory(cats []Category, ref string) (Category, bool) {
	for _, c := range cats {
		if c.ID == ref {
			return c, true
		}
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, ref) {
			return c, true
		}
	}
	return Category{}, false
}

func FindPaymentType(types []PaymentType, ref string) (PaymentType, bool) {
	for _, p := range types {
		if p.ID == ref {
			return p, true
		}
	}
	for _, p := range types {
		if strings.EqualFold(p.Name, ref) {
			return p, true
		}
	}
	return PaymentType{}, false
}

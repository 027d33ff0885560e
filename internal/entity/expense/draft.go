package expense

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("nome é obrigatório")
	ErrEmptyDescription = errors.New("descrição é obrigatória")
	ErrNegativeAmount   = errors.New("valor não pode ser negativo")
	ErrEmptyDate        = errors.New("data é obrigatória")
)

// CategoryDraft is the POST /categorias body.
type CategoryDraft struct {
	Name  string `json:"nome"`
	Color string `json:"cor"`
}

func (d CategoryDraft) Normalize() (CategoryDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return d, ErrEmptyName
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
	return d, nil
}

// PaymentTypeDraft is the POST /tipos-pagamento body.
type PaymentTypeDraft struct {
	Name  string `json:"nome"`
	Icon  string `json:"icone"`
	Color string `json:"cor"`
}

func (d PaymentTypeDraft) Normalize() (PaymentTypeDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return d, ErrEmptyName
	}
	if d.Icon == "" {
		d.Icon = DefaultIcon
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
	return d, nil
}

// Draft is the POST /gastos body.
type Draft struct {
	Description   string
	Amount        decimal.Decimal
	CategoryID    string
	PaymentTypeID string
	Date          Date
}

func (d Draft) Normalize() (Draft, error) {
	d.Description = strings.TrimSpace(d.Description)
	if d.Description == "" {
		return d, ErrEmptyDescription
	}
	if d.Amount.IsNegative() {
		return d, ErrNegativeAmount
	}
	if d.Date.IsZero() {
		return d, ErrEmptyDate
	}
	return d, nil
}

type draftJSON struct {
	Description   string      `json:"descricao"`
	Amount        json.Number `json:"valor"`
	CategoryID    string      `json:"categoria_id"`
	PaymentTypeID string      `json:"tipo_pagamento_id"`
	Date          Date        `json:"data_gasto"`
}

// MarshalJSON writes valor as a bare JSON number; the backend expects a float.
func (d Draft) MarshalJSON() ([]byte, error) {
	return json.Marshal(draftJSON{
		Description:   d.Description,
		Amount:        json.Number(d.Amount.String()),
		CategoryID:    d.CategoryID,
		PaymentTypeID: d.PaymentTypeID,
		Date:          d.Date,
	})
}

// ParseAmount reads an amount typed by a user, accepting "12,34" as well as "12.34".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid amount %q", s)
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return amount, nil
}

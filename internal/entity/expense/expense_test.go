package expense

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnDecodeExpense_ShouldReadBackendDocument(t *testing.T) {
	body := `{
		"id": "65f1",
		"descricao": "Mercado",
		"valor": 123.45,
		"data_gasto": "2024-03-01",
		"categoria": {"id": "c1", "nome": "Alimentação", "cor": "#ff0000"},
		"tipo_pagamento": {"id": "p1", "nome": "Pix", "icone": "⚡", "cor": "#00ff00"},
		"criado_em": "2024-03-01T10:11:12.123456"
	}`

	var exp Expense
	require.NoError(t, json.Unmarshal([]byte(body), &exp))

	assert.Equal(t, "65f1", exp.ID)
	assert.True(t, decimal.RequireFromString("123.45").Equal(exp.Amount))
	assert.Equal(t, NewDate(2024, time.March, 1), exp.Date)
	assert.Equal(t, "Alimentação", exp.CategoryName())
	assert.Equal(t, "⚡ Pix", exp.PaymentType.Label())
}

func Test_OnDecodeTimestampDate_ShouldKeepCalendarDate(t *testing.T) {
	var exp Expense
	require.NoError(t, json.Unmarshal([]byte(`{"data_gasto": "2024-02-29T23:10:00Z", "valor": 1}`), &exp))
	assert.Equal(t, "2024-02-29", exp.Date.String())
	assert.Equal(t, "29/02/2024", exp.Date.Display())
}

func Test_OnDecodeListWithInvalidDate_ShouldKeepOtherRecords(t *testing.T) {
	body := `[
		{"id": "a", "data_gasto": "2024-03-01", "valor": 10},
		{"id": "b", "data_gasto": "ontem", "valor": 20},
		{"id": "c", "data_gasto": 20240301, "valor": 30}
	]`

	var exps []Expense
	require.NoError(t, json.Unmarshal([]byte(body), &exps))

	require.Len(t, exps, 3)
	assert.Equal(t, "01/03/2024", exps[0].Date.Display())
	assert.True(t, exps[1].Date.IsZero())
	assert.Equal(t, InvalidDateText, exps[1].Date.Display())
	assert.Equal(t, InvalidDateText, exps[2].Date.Display())
	assert.True(t, decimal.NewFromInt(20).Equal(exps[1].Amount))
}

func Test_OnSortByDateDesc_ShouldPutNewestFirstAndKeepTies(t *testing.T) {
	exps := []Expense{
		{ID: "jan", Date: NewDate(2024, time.January, 1)},
		{ID: "mar-a", Date: NewDate(2024, time.March, 1)},
		{ID: "feb", Date: NewDate(2024, time.February, 1)},
		{ID: "mar-b", Date: NewDate(2024, time.March, 1)},
	}

	SortByDateDesc(exps)

	ids := make([]string, 0, len(exps))
	for _, e := range exps {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"mar-a", "mar-b", "feb", "jan"}, ids)
}

func Test_OnTotal_ShouldSumAmounts(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(Total(nil)))

	exps := []Expense{
		{Amount: decimal.RequireFromString("0.1")},
		{Amount: decimal.RequireFromString("0.2")},
		{Amount: decimal.RequireFromString("1234.5")},
	}
	assert.Equal(t, "1234.8", Total(exps).String())
}

func Test_OnBetween_ShouldKeepHalfOpenRange(t *testing.T) {
	exps := []Expense{
		{ID: "before", Date: NewDate(2024, time.February, 29)},
		{ID: "first", Date: NewDate(2024, time.March, 1)},
		{ID: "last", Date: NewDate(2024, time.March, 31)},
		{ID: "after", Date: NewDate(2024, time.April, 1)},
	}

	res := Between(exps, NewDate(2024, time.March, 1).Time, NewDate(2024, time.April, 1).Time)

	require.Len(t, res, 2)
	assert.Equal(t, "first", res[0].ID)
	assert.Equal(t, "last", res[1].ID)
}

func Test_OnMarshalDraft_ShouldWriteBackendFields(t *testing.T) {
	draft := Draft{
		Description:   "Cinema",
		Amount:        decimal.RequireFromString("42.5"),
		CategoryID:    "c1",
		PaymentTypeID: "p1",
		Date:          NewDate(2024, time.March, 9),
	}

	raw, err := json.Marshal(draft)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"descricao": "Cinema",
		"valor": 42.5,
		"categoria_id": "c1",
		"tipo_pagamento_id": "p1",
		"data_gasto": "2024-03-09"
	}`, string(raw))
}

func Test_OnNormalizeDrafts_ShouldApplyDefaultsAndValidate(t *testing.T) {
	cat, err := CategoryDraft{Name: "  Lazer "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, CategoryDraft{Name: "Lazer", Color: DefaultColor}, cat)

	pay, err := PaymentTypeDraft{Name: "Débito"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, PaymentTypeDraft{Name: "Débito", Icon: DefaultIcon, Color: DefaultColor}, pay)

	_, err = CategoryDraft{Name: " "}.Normalize()
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = Draft{Description: "x", Amount: decimal.NewFromInt(-1), Date: NewDate(2024, 1, 1)}.Normalize()
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = Draft{Description: "x", Amount: decimal.NewFromInt(1)}.Normalize()
	assert.ErrorIs(t, err, ErrEmptyDate)
}

func Test_OnParseAmount_ShouldAcceptBothSeparators(t *testing.T) {
	cases := map[string]string{
		"12.34":       "12.34",
		"12,34":       "12.34",
		"R$ 1.234,50": "1234.5",
		" 7 ":         "7",
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := ParseAmount("-3")
	assert.ErrorIs(t, err, ErrNegativeAmount)
	_, err = ParseAmount("abc")
	assert.Error(t, err)
}

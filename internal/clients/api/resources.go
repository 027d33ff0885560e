package api

import (
	"context"
	"net/http"
	"net/url"

	"max.ks1230/gastos-client/internal/entity/expense"
)

// Filter narrows GET /gastos to one month. The zero value lists everything.
type Filter struct {
	Month int
	Year  int
}

func (f Filter) query() string {
	if f.Month == 0 || f.Year == 0 {
		return ""
	}
	q := url.Values{}
	q.Set("mes", itoa(f.Month))
	q.Set("ano", itoa(f.Year))
	return "?" + q.Encode()
}

func (c *Client) ListCategories(ctx context.Context) ([]expense.Category, error) {
	res := make([]expense.Category, 0)
	err := c.do(ctx, http.MethodGet, categoriesPath, nil, &res)
	return res, err
}

func (c *Client) CreateCategory(ctx context.Context, draft expense.CategoryDraft) (created expense.Category, err error) {
	err = c.do(ctx, http.MethodPost, categoriesPath, draft, &created)
	return created, err
}

func (c *Client) ListPaymentTypes(ctx context.Context) ([]expense.PaymentType, error) {
	res := make([]expense.PaymentType, 0)
	err := c.do(ctx, http.MethodGet, paymentTypesPath, nil, &res)
	return res, err
}

func (c *Client) CreatePaymentType(ctx context.Context, draft expense.PaymentTypeDraft) (created expense.PaymentType, err error) {
	err = c.do(ctx, http.MethodPost, paymentTypesPath, draft, &created)
	return created, err
}

func (c *Client) ListExpenses(ctx context.Context, filter Filter) ([]expense.Expense, error) {
	res := make([]expense.Expense, 0)
	err := c.do(ctx, http.MethodGet, expensesPath+filter.query(), nil, &res)
	return res, err
}

func (c *Client) CreateExpense(ctx context.Context, draft expense.Draft) (created expense.Expense, err error) {
	err = c.do(ctx, http.MethodPost, expensesPath, draft, &created)
	return created, err
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, expensesPath+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) MonthlyReport(ctx context.Context, year, month int) (report expense.MonthlyReport, err error) {
	err = c.do(ctx, http.MethodGet, monthlyPath+"/"+itoa(year)+"/"+itoa(month), nil, &report)
	return report, err
}

func (c *Client) AnnualReport(ctx context.Context, year int) (report expense.AnnualReport, err error) {
	err = c.do(ctx, http.MethodGet, annualPath+"/"+itoa(year), nil, &report)
	return report, err
}

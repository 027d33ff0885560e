package view

import (
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/model/notify"
	"max.ks1230/gastos-client/internal/model/state"
)

const (
	ConnectedText = "Backend conectado"
	OfflineText   = "Backend offline"
	CheckingText  = "Verificando conexão..."

	EmptyTitle = "📝 Nenhum gasto encontrado"
	EmptyHint  = "Comece adicionando seu primeiro gasto!"

	Uncategorized = "Sem categoria"
)

// Badge is a coloured label; Color is the backend's "cor" value.
type Badge struct {
	Text  string
	Color string
}

type Item struct {
	ID          string
	Description string
	Date        string
	Amount      string
	Category    *Badge
	PaymentType *Badge
}

// Empty is set instead of Items when there is nothing to list.
type Empty struct {
	Title string
	Hint  string
}

// Choice is one entry of a category or payment type picker.
type Choice struct {
	ID    string
	Label string
	Color string
}

type CategoryTotal struct {
	Name   string
	Color  string
	Amount string
	Value  decimal.Decimal
}

// Summary covers the calendar month that contains Options.Now.
type Summary struct {
	Month      string
	Total      string
	Count      int
	Categories []CategoryTotal
}

type View struct {
	Connection   state.Connection
	StatusText   string
	Loading      bool
	Stale        bool
	Total        string
	Items        []Item
	Empty        *Empty
	Categories   []Choice
	PaymentTypes []Choice
	Summary      Summary
	Notice       []notify.Notification
}

type Options struct {
	Now           time.Time
	Location      *time.Location
	Notifications []notify.Notification
}

// Render builds the view tree from snap. It does not modify snap.
func Render(snap state.Snapshot, opts Options) View {
	exps := append([]expense.Expense(nil), snap.Expenses...)
	expense.SortByDateDesc(exps)

	v := View{
		Connection:   snap.Connection,
		StatusText:   StatusText(snap.Connection),
		Total:        FormatCurrency(Total(exps)),
		Categories:   categoryChoices(snap.Categories),
		PaymentTypes: paymentTypeChoices(snap.PaymentTypes),
		Summary:      summarize(exps, opts),
		Notice:       opts.Notifications,
	}
	for _, kind := range state.Kinds {
		if snap.Status[kind] == state.Loading {
			v.Loading = true
		}
		if snap.Stale[kind] || snap.Status[kind] == state.Stale {
			v.Stale = true
		}
	}

	if len(exps) == 0 {
		v.Empty = &Empty{Title: EmptyTitle, Hint: EmptyHint}
		return v
	}
	v.Items = make([]Item, 0, len(exps))
	for _, exp := range exps {
		v.Items = append(v.Items, item(exp))
	}
	return v
}

func item(exp expense.Expense) Item {
	it := Item{
		ID:          exp.ID,
		Description: exp.Description,
		Date:        exp.Date.Display(),
		Amount:      FormatCurrency(exp.Amount),
	}
	if exp.Category != nil {
		it.Category = &Badge{Text: exp.Category.Name, Color: exp.Category.Color}
	}
	if exp.PaymentType != nil {
		it.PaymentType = &Badge{Text: exp.PaymentType.Label(), Color: exp.PaymentType.Color}
	}
	return it
}

func categoryChoices(cats []expense.Category) []Choice {
	res := make([]Choice, 0, len(cats))
	for _, c := range cats {
		res = append(res, Choice{ID: c.ID, Label: c.Name, Color: c.Color})
	}
	return res
}

func paymentTypeChoices(types []expense.PaymentType) []Choice {
	res := make([]Choice, 0, len(types))
	for _, p := range types {
		res = append(res, Choice{ID: p.ID, Label: p.Label(), Color: p.Color})
	}
	return res
}

func summarize(exps []expense.Expense, opts Options) Summary {
	ref := opts.Now
	if ref.IsZero() {
		ref = time.Now()
	}
	if opts.Location != nil {
		ref = ref.In(opts.Location)
	}
	month := now.With(ref)
	from := expense.DateOf(month.BeginningOfMonth())
	to := expense.DateOf(month.EndOfMonth()).AddDate(0, 0, 1)

	inMonth := expense.Between(exps, from.Time, to)
	return Summary{
		Month:      ref.Format("01/2006"),
		Total:      FormatCurrency(Total(inMonth)),
		Count:      len(inMonth),
		Categories: groupByCategory(inMonth),
	}
}

func groupByCategory(exps []expense.Expense) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	colors := make(map[string]string)
	for _, exp := range exps {
		name := exp.CategoryName()
		if name == "" {
			name = Uncategorized
		}
		sums[name] = sums[name].Add(exp.Amount)
		if exp.Category != nil {
			colors[name] = exp.Category.Color
		}
	}

	res := make([]CategoryTotal, 0, len(sums))
	for name, sum := range sums {
		res = append(res, CategoryTotal{Name: name, Color: colors[name], Amount: FormatCurrency(sum), Value: sum})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Value.Equal(res[j].Value) {
			return res[i].Name < res[j].Name
		}
		return res[i].Value.GreaterThan(res[j].Value)
	})
	return res
}

// Total sums the amounts of exps; no expenses sum to zero.
func Total(exps []expense.Expense) decimal.Decimal {
	return expense.Total(exps)
}

// FormatCurrency renders d as "R$ 1234,50": two fraction digits, comma as the
// decimal separator, no thousands grouping.
func FormatCurrency(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func StatusText(c state.Connection) string {
	switch c {
	case state.Online:
		return ConnectedText
	case state.Offline:
		return OfflineText
	}
	return CheckingText
}

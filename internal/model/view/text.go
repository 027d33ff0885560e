package view

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

const (
	staleMark = " (dados desatualizados)"

	// MaxChatRunes is the longest message Telegram accepts.
	MaxChatRunes = 4096
	chatItems    = 30
)

// Text renders v for line-oriented outputs.
func Text(v View) string {
	return text(v, len(v.Items))
}

// ChatText is Text for chat messages: at most the newest 30 items, fewer if
// needed to stay within limit runes. Total and summary always cover
// everything; a trailing line counts what was left out.
func ChatText(v View, limit int) string {
	keep := len(v.Items)
	if keep > chatItems {
		keep = chatItems
	}
	for {
		res := text(v, keep)
		if utf8.RuneCountInString(res) <= limit {
			return res
		}
		if keep == 0 {
			return string([]rune(res)[:limit])
		}
		keep--
	}
}

func text(v View, keep int) string {
	var b strings.Builder

	b.WriteString(v.StatusText)
	if v.Stale {
		b.WriteString(staleMark)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %s\n\n", v.Total)

	if v.Empty != nil {
		fmt.Fprintf(&b, "%s\n%s\n", v.Empty.Title, v.Empty.Hint)
	} else {
		b.WriteString(Items(v.Items[:keep]))
		if hidden := len(v.Items) - keep; hidden > 0 {
			fmt.Fprintf(&b, "+%d gastos mais antigos\n", hidden)
		}
	}

	b.WriteString("\n")
	b.WriteString(SummaryText(v.Summary))
	return b.String()
}

// Items renders one aligned line per expense.
func Items(items []Item) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t#%s\n", it.Date, it.Description, it.Amount, badges(it), it.ID)
	}
	_ = w.Flush()
	return b.String()
}

func badges(it Item) string {
	parts := make([]string, 0, 2)
	if it.Category != nil {
		parts = append(parts, "["+it.Category.Text+"]")
	}
	if it.PaymentType != nil {
		parts = append(parts, "["+it.PaymentType.Text+"]")
	}
	return strings.Join(parts, " ")
}

func SummaryText(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resumo %s: %s (%d gastos)\n", s.Month, s.Total, s.Count)
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "  %s: %s\n", c.Name, c.Amount)
	}
	return b.String()
}

// Choices renders a picker list as "id  label" lines.
func Choices(choices []Choice) string {
	var b strings.Builder
	for _, c := range choices {
		fmt.Fprintf(&b, "%s  %s\n", c.ID, c.Label)
	}
	return b.String()
}

package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"max.ks1230/gastos-client/internal/model/notify"
	"max.ks1230/gastos-client/internal/model/remote"
	"max.ks1230/gastos-client/internal/model/state"
	"max.ks1230/gastos-client/internal/model/view"
)

const (
	title            = "💰 Controle de Gastos"
	helpLine         = "↑/↓ selecionar • d excluir • r atualizar • q sair"
	confirmSuffix    = " [s/n]"
	expireCheckEvery = 500 * time.Millisecond
)

type syncer interface {
	Store() *state.Store
	LoadAll(ctx context.Context)
	DeleteExpense(ctx context.Context, id string, confirm remote.Confirmer) error
}

type config interface {
	Location() *time.Location
}

type (
	storeChangedMsg struct{}
	noticeMsg       struct{}
	expireMsg       struct{}
	doneMsg         struct{ err error }
)

// Model is the bubbletea model of the live dashboard. It never mutates the
// store itself: every write goes through the syncer and comes back as a store
// change.
type Model struct {
	ctx      context.Context
	syncer   syncer
	board    *notify.Board
	location *time.Location
	now      func() time.Time
	changes  <-chan struct{}
	styles   Styles

	view       view.View
	selected   int
	confirming string
}

func New(ctx context.Context, syncer syncer, board *notify.Board, changes <-chan struct{}, cfg config) Model {
	m := Model{
		ctx:      ctx,
		syncer:   syncer,
		board:    board,
		location: cfg.Location(),
		now:      time.Now,
		changes:  changes,
		styles:   defaultStyles(),
	}
	m.refresh()
	return m
}

// Run shows the dashboard until the user quits or ctx is done.
func Run(ctx context.Context, syncer syncer, board *notify.Board, cfg config) error {
	changes, cancel := syncer.Store().Subscribe()
	defer cancel()

	p := tea.NewProgram(New(ctx, syncer, board, changes, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run dashboard")
	}
	return nil
}

func wait(ch <-chan struct{}, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return msg
	}
}

func expireTick() tea.Cmd {
	return tea.Tick(expireCheckEvery, func(time.Time) tea.Msg {
		return expireMsg{}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		wait(m.changes, storeChangedMsg{}),
		wait(m.board.Changed(), noticeMsg{}),
		expireTick(),
	)
}

func (m *Model) refresh() {
	m.view = view.Render(m.syncer.Store().Snapshot(), view.Options{
		Now:           m.now(),
		Location:      m.location,
		Notifications: m.board.Active(),
	})
	if m.selected >= len(m.view.Items) {
		m.selected = len(m.view.Items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.refresh()
		return m, wait(m.changes, storeChangedMsg{})
	case noticeMsg:
		m.refresh()
		return m, wait(m.board.Changed(), noticeMsg{})
	case expireMsg:
		m.refresh()
		return m, expireTick()
	case doneMsg:
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if m.confirming != "" {
			return m.answer(msg)
		}
		return m.key(msg)
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.view.Items)-1 {
			m.selected++
		}
	case "r":
		return m, m.reload()
	case "d":
		if len(m.view.Items) > 0 {
			m.confirming = m.view.Items[m.selected].ID
		}
	}
	return m, nil
}

// answer resolves the inline delete prompt.
func (m Model) answer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var confirmed bool
	switch msg.String() {
	case "s", "S", "y", "Y":
		confirmed = true
	case "n", "N", "esc":
	case "ctrl+c":
		return m, tea.Quit
	default:
		return m, nil
	}

	id := m.confirming
	m.confirming = ""
	return m, m.delete(id, confirmed)
}

func (m Model) reload() tea.Cmd {
	return func() tea.Msg {
		m.syncer.LoadAll(m.ctx)
		return doneMsg{}
	}
}

func (m Model) delete(id string, confirmed bool) tea.Cmd {
	return func() tea.Msg {
		confirm := remote.ConfirmFunc(func(context.Context, string) bool { return confirmed })
		return doneMsg{err: m.syncer.DeleteExpense(m.ctx, id, confirm)}
	}
}

func (m Model) View() string {
	v := m.view
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(title))
	b.WriteString("  ")
	if v.Connection == state.Offline {
		b.WriteString(s.Offline.Render("● " + v.StatusText))
	} else {
		b.WriteString(s.Online.Render("● " + v.StatusText))
	}
	if v.Stale {
		b.WriteString(s.Muted.Render(" (dados desatualizados)"))
	}
	b.WriteString("\n\n")
	b.WriteString("Total gasto: " + s.Total.Render(v.Total) + "\n\n")

	if v.Empty != nil {
		b.WriteString(s.Muted.Render(v.Empty.Title) + "\n")
		b.WriteString(s.Muted.Render(v.Empty.Hint) + "\n")
	}
	for i, it := range v.Items {
		b.WriteString(m.item(i, it) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Summary.Render(strings.TrimRight(view.SummaryText(v.Summary), "\n")))
	b.WriteString("\n")

	for _, n := range v.Notice {
		b.WriteString(s.notification(n.Kind).Render(n.Message) + "\n")
	}
	if m.confirming != "" {
		b.WriteString(s.Confirm.Render(remote.DeletePrompt+confirmSuffix) + "\n")
	}
	b.WriteString(s.Muted.Render(helpLine))
	return b.String()
}

func (m Model) item(i int, it view.Item) string {
	cursor := "  "
	desc := it.Description
	if i == m.selected {
		cursor = m.styles.Selected.Render("› ")
		desc = m.styles.Selected.Render(desc)
	}

	parts := []string{cursor + desc, m.styles.Muted.Render("📅 " + it.Date)}
	if it.Category != nil {
		parts = append(parts, badge(it.Category.Text, it.Category.Color))
	}
	if it.PaymentType != nil {
		parts = append(parts, badge(it.PaymentType.Text, it.PaymentType.Color))
	}
	parts = append(parts, m.styles.Amount.Render(it.Amount))
	return strings.Join(parts, "  ")
}

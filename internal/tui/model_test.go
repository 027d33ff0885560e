package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/model/notify"
	"max.ks1230/gastos-client/internal/model/remote"
	"max.ks1230/gastos-client/internal/model/state"
	"max.ks1230/gastos-client/internal/model/view"
)

type fakeSyncer struct {
	store     *state.Store
	loads     int
	deleted   []string
	confirmed []bool
}

func (f *fakeSyncer) Store() *state.Store {
	return f.store
}

func (f *fakeSyncer) LoadAll(context.Context) {
	f.loads++
}

func (f *fakeSyncer) DeleteExpense(ctx context.Context, id string, confirm remote.Confirmer) error {
	ok := confirm.Confirm(ctx, remote.DeletePrompt)
	f.confirmed = append(f.confirmed, ok)
	if !ok {
		return remote.ErrDeclined
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type testConfig struct{}

func (testConfig) Location() *time.Location {
	return time.UTC
}

func newModel(t *testing.T, exps ...expense.Expense) (Model, *fakeSyncer) {
	t.Helper()
	s := &fakeSyncer{store: state.New()}
	if exps != nil {
		require.True(t, s.store.ReplaceExpenses(s.store.Begin(state.Expenses), exps))
	}
	changes, cancel := s.store.Subscribe()
	t.Cleanup(cancel)
	return New(context.Background(), s, notify.NewBoard(time.Second), changes, testConfig{}), s
}

func keys(m Model, ks ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range ks {
		var next tea.Model
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		}
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func expenses() []expense.Expense {
	return []expense.Expense{
		{ID: "old", Description: "Mercado", Amount: decimal.NewFromInt(10), Date: expense.NewDate(2024, time.January, 1)},
		{ID: "new", Description: "Luz", Amount: decimal.NewFromInt(20), Date: expense.NewDate(2024, time.March, 1)},
	}
}

func Test_OnEmptyStore_ShouldShowEmptyState(t *testing.T) {
	m, _ := newModel(t)

	out := m.View()

	assert.Contains(t, out, view.EmptyTitle)
	assert.Contains(t, out, view.EmptyHint)
	assert.Contains(t, out, "R$ 0,00")
}

func Test_OnDeleteConfirmed_ShouldDeleteSelected(t *testing.T) {
	m, s := newModel(t, expenses()...)

	m, _ = keys(m, "down", "d")
	assert.Contains(t, m.View(), remote.DeletePrompt)

	m, cmd := keys(m, "s")
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"old"}, s.deleted)
	assert.NotContains(t, m.View(), remote.DeletePrompt)
}

func Test_OnDeleteDeclined_ShouldNotDelete(t *testing.T) {
	m, s := newModel(t, expenses()...)

	m, _ = keys(m, "d")
	_, cmd := keys(m, "n")
	require.NotNil(t, cmd)
	cmd()

	assert.Empty(t, s.deleted)
	assert.Equal(t, []bool{false}, s.confirmed)
}

func Test_OnOtherKeyWhileConfirming_ShouldKeepAsking(t *testing.T) {
	m, s := newModel(t, expenses()...)

	m, _ = keys(m, "d", "x")

	assert.Equal(t, "new", m.confirming)
	assert.Empty(t, s.confirmed)
}

func Test_OnStoreChange_ShouldRedraw(t *testing.T) {
	m, s := newModel(t)
	require.True(t, s.store.ReplaceExpenses(s.store.Begin(state.Expenses), expenses()))

	next, cmd := m.Update(storeChangedMsg{})
	m = next.(Model)

	assert.NotNil(t, cmd)
	require.Len(t, m.view.Items, 2)
	assert.Equal(t, "new", m.view.Items[0].ID)
	assert.Contains(t, m.View(), "R$ 30,00")
}

func Test_OnRefreshKey_ShouldReload(t *testing.T) {
	m, s := newModel(t)

	_, cmd := keys(m, "r")
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, 1, s.loads)
}

func Test_OnQuitKey_ShouldQuit(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := keys(m, "q")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

package messages

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/model/state"
	"max.ks1230/gastos-client/internal/model/view"
)

type edit struct {
	userID    int64
	messageID int
	text      string
}

type fakeDashboardClient struct {
	mu      sync.Mutex
	sent    []string
	edits   []edit
	editErr error

	// when set, EditMessage signals editing and waits for release
	editing chan struct{}
	release chan struct{}
}

func (c *fakeDashboardClient) SendTracked(text string, _ int64) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, text)
	return len(c.sent), nil
}

func (c *fakeDashboardClient) EditMessage(text string, userID int64, messageID int) error {
	if c.editing != nil {
		c.editing <- struct{}{}
		<-c.release
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editErr != nil {
		return c.editErr
	}
	c.edits = append(c.edits, edit{userID: userID, messageID: messageID, text: text})
	return nil
}

func (c *fakeDashboardClient) editCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.edits)
}

func Test_OnStoreChange_ShouldEditOpenDashboard(t *testing.T) {
	client := &fakeDashboardClient{}
	store := state.New()
	d := NewDashboards(client, store, testConfig{})

	require.NoError(t, d.Open(userID))
	require.Len(t, client.sent, 1)
	assert.Contains(t, client.sent[0], view.EmptyTitle)

	d.Refresh()
	assert.Empty(t, client.edits)

	store.ReplaceExpenses(store.Begin(state.Expenses), []expense.Expense{
		{ID: "1", Description: "Luz", Amount: decimal.NewFromInt(50), Date: expense.NewDate(2024, time.March, 1)},
	})
	d.Refresh()

	require.Len(t, client.edits, 1)
	assert.Equal(t, userID, client.edits[0].userID)
	assert.Equal(t, 1, client.edits[0].messageID)
	assert.Contains(t, client.edits[0].text, "R$ 50,00")
}

func Test_OnEditFailure_ShouldForgetDashboard(t *testing.T) {
	client := &fakeDashboardClient{}
	store := state.New()
	d := NewDashboards(client, store, testConfig{})
	require.NoError(t, d.Open(userID))

	client.editErr = errors.New("message to edit not found")
	store.SetConnection(state.Online)
	d.Refresh()

	assert.Empty(t, d.open)
}

func Test_OnOfflineTicksWithUnchangedData_ShouldNotEdit(t *testing.T) {
	client := &fakeDashboardClient{}
	store := state.New()
	store.ReplaceExpenses(store.Begin(state.Expenses), []expense.Expense{
		{ID: "1", Description: "Luz", Amount: decimal.NewFromInt(50), Date: expense.NewDate(2024, time.March, 1)},
	})
	store.Fail(state.Expenses, store.Begin(state.Expenses))
	store.SetConnection(state.Offline)

	d := NewDashboards(client, store, testConfig{})
	require.NoError(t, d.Open(userID))

	for i := 0; i < 3; i++ {
		seq := store.Begin(state.Expenses)
		d.Refresh()
		store.Fail(state.Expenses, seq)
		d.Refresh()
	}

	assert.Equal(t, 0, client.editCount())
}

func Test_OnLargeCollection_ShouldOpenDashboardWithinChatLimit(t *testing.T) {
	client := &fakeDashboardClient{}
	store := state.New()
	exps := make([]expense.Expense, 0, 100)
	for i := 0; i < 100; i++ {
		exps = append(exps, expense.Expense{
			ID:          "65f1a2b3c4d5e6f7a8b9c0" + string(rune('a'+i%26)),
			Description: "Supermercado do bairro, compras da semana",
			Amount:      decimal.NewFromInt(int64(i + 1)),
			Date:        expense.NewDate(2024, time.March, 1+i%28),
			Category:    &expense.Category{ID: "c1", Name: "Alimentação"},
			PaymentType: &expense.PaymentType{ID: "p1", Name: "Cartão de crédito", Icon: "💳"},
		})
	}
	store.ReplaceExpenses(store.Begin(state.Expenses), exps)

	d := NewDashboards(client, store, testConfig{})
	require.NoError(t, d.Open(userID))

	require.Len(t, client.sent, 1)
	assert.LessOrEqual(t, len([]rune(client.sent[0])), view.MaxChatRunes)
	assert.Contains(t, client.sent[0], "Total: R$ 5050,00")
}

func Test_OnSlowEdit_ShouldNotBlockOpen(t *testing.T) {
	client := &fakeDashboardClient{editing: make(chan struct{}), release: make(chan struct{})}
	store := state.New()
	d := NewDashboards(client, store, testConfig{})
	require.NoError(t, d.Open(userID))

	store.SetConnection(state.Online)
	refreshed := make(chan struct{})
	go func() {
		d.Refresh()
		close(refreshed)
	}()
	<-client.editing

	opened := make(chan error, 1)
	go func() { opened <- d.Open(userID + 1) }()

	select {
	case err := <-opened:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("open blocked behind a dashboard edit")
	}

	close(client.release)
	<-refreshed
	assert.Equal(t, 1, client.editCount())
}

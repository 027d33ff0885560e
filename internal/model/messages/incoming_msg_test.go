package messages

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/gastos-client/internal/clients/api"
	"max.ks1230/gastos-client/internal/model/messages/mock"
	"max.ks1230/gastos-client/internal/model/remote"
	"max.ks1230/gastos-client/internal/model/state"
)

const userID = int64(123)

type testConfig struct {
	url string
}

func (c testConfig) BaseURL() string                { return c.url }
func (c testConfig) Timeout() time.Duration         { return time.Second }
func (c testConfig) RefreshInterval() time.Duration { return time.Minute }
func (c testConfig) Location() *time.Location       { return time.UTC }

type backend struct {
	deletes int64
	posted  map[string]interface{}
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/categorias":
		_, _ = io.WriteString(w, `[{"id":"1","nome":"Alimentação","cor":"#e74c3c"}]`)
	case r.URL.Path == "/tipos-pagamento":
		_, _ = io.WriteString(w, `[{"id":"7","nome":"Pix","icone":"⚡","cor":"#2ecc71"}]`)
	case r.URL.Path == "/gastos" && r.Method == http.MethodGet:
		_, _ = io.WriteString(w, `[]`)
	case r.URL.Path == "/gastos" && r.Method == http.MethodPost:
		_ = json.NewDecoder(r.Body).Decode(&b.posted)
		_, _ = io.WriteString(w, `{"id":"9","descricao":"Almoço fora","valor":12.5,"data_gasto":"2024-03-05"}`)
	case r.URL.Path == "/gastos/9" && r.Method == http.MethodDelete:
		atomic.AddInt64(&b.deletes, 1)
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	case r.URL.Path == "/relatorio/mensal/2024/3":
		_, _ = io.WriteString(w, `{"mes":3,"ano":2024,"total":62.5,"por_categoria":[{"nome":"Alimentação","cor":"#e74c3c","total":62.5,"quantidade":2}],"gastos":[]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestService(t *testing.T, sender *mock.MessageSenderMock) (*Service, *backend, *remote.Syncer) {
	t.Helper()
	b := &backend{}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	cfg := testConfig{url: srv.URL}
	client := api.New(cfg)
	syncer := remote.New(client, state.New(), NewChatNotifier(sender), cfg)
	return NewService(sender, syncer, client, cfg), b, syncer
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(helloMessage, userID).
		Return(nil)

	model, _, _ := newTestService(t, sender)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		UserID: userID,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(dontUnderstandMessage, userID).
		Return(nil)

	model, _, _ := newTestService(t, sender)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		UserID: userID,
	})

	assert.NoError(t, err)
}

func Test_OnTotalWithoutExpenses_ShouldAnswerZero(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("Total: R$ 0,00", userID).
		Return(nil)

	model, _, _ := newTestService(t, sender)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/total@gastos_bot",
		UserID: userID,
	})

	assert.NoError(t, err)
}

func Test_OnExpenseCommand_ShouldCreateAndNotify(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(remote.ExpenseCreatedMessage, userID).
		Return(nil)

	model, b, syncer := newTestService(t, sender)
	syncer.LoadAll(context.Background())

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/gasto 12,50 alimentação PIX 05/03/2024 Almoço fora",
		UserID: userID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Almoço fora", b.posted["descricao"])
	assert.Equal(t, 12.5, b.posted["valor"])
	assert.Equal(t, "2024-03-05", b.posted["data_gasto"])
	assert.Equal(t, "1", b.posted["categoria_id"])
	assert.Equal(t, "7", b.posted["tipo_pagamento_id"])
}

func Test_OnExpenseWithUnknownCategory_ShouldNotSend(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(unknownCategoryMessage+"lazer", userID).
		Return(nil)

	model, b, syncer := newTestService(t, sender)
	syncer.LoadAll(context.Background())

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/gasto 10 lazer pix Cinema",
		UserID: userID,
	})

	require.NoError(t, err)
	assert.Nil(t, b.posted)
}

func Test_OnDeleteConfirmed_ShouldDeleteAndNotify(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.When(remote.DeletePrompt+confirmInstructions, userID).Then(nil)
	sender.SendMessageMock.When(remote.ExpenseDeletedMessage, userID).Then(nil)

	model, b, _ := newTestService(t, sender)
	ctx := context.Background()

	require.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/excluir 9", UserID: userID}))
	assert.Zero(t, atomic.LoadInt64(&b.deletes))

	require.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/sim", UserID: userID}))
	assert.EqualValues(t, 1, atomic.LoadInt64(&b.deletes))
}

func Test_OnDeleteDeclined_ShouldNotSendRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.When(remote.DeletePrompt+confirmInstructions, userID).Then(nil)
	sender.SendMessageMock.When(deleteCancelledMessage, userID).Then(nil)
	sender.SendMessageMock.When(nothingPendingMessage, userID).Then(nil)

	model, b, _ := newTestService(t, sender)
	ctx := context.Background()

	require.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/excluir 9", UserID: userID}))
	require.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/nao", UserID: userID}))
	require.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/sim", UserID: userID}))

	assert.Zero(t, atomic.LoadInt64(&b.deletes))
}

func Test_OnMonthlyReport_ShouldFormatCategories(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("Relatório 03/2024\n\nAlimentação: R$ 62,50 (2)\n\nTotal: R$ 62,50", userID).
		Return(nil)

	model, _, _ := newTestService(t, sender)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/relatorio 3 2024",
		UserID: userID,
	})

	assert.NoError(t, err)
}

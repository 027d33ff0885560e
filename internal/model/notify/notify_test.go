package notify

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_OnBoard_ShouldExpireAfterTTL(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	b := NewBoard(3 * time.Second)
	b.now = func() time.Time { return now }

	b.Notify(context.Background(), Successf("Gasto adicionado com sucesso!"))
	now = now.Add(2 * time.Second)
	b.Notify(context.Background(), Errorf("Erro: %s", "Categoria já existe"))

	assert.Equal(t, []Notification{
		{Kind: Success, Message: "Gasto adicionado com sucesso!"},
		{Kind: Error, Message: "Erro: Categoria já existe"},
	}, b.Active())

	now = now.Add(1500 * time.Millisecond)
	assert.Equal(t, []Notification{{Kind: Error, Message: "Erro: Categoria já existe"}}, b.Active())

	now = now.Add(2 * time.Second)
	assert.Empty(t, b.Active())
}

func Test_OnBoardNotify_ShouldSignalChange(t *testing.T) {
	b := NewBoard(time.Second)
	b.Notify(context.Background(), Successf("ok"))

	select {
	case <-b.Changed():
	default:
		t.Fatal("expected change signal")
	}
}

func Test_OnPrinter_ShouldSplitByKind(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Notify(context.Background(), Successf("Categoria criada com sucesso!"))
	p.Notify(context.Background(), Errorf("Erro na conexão: refused"))

	assert.Equal(t, "Categoria criada com sucesso!\n", out.String())
	assert.Equal(t, "Erro na conexão: refused\n", errOut.String())
}

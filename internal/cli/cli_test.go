package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/gastos-client/internal/model/remote"
	"max.ks1230/gastos-client/internal/model/view"
)

type backend struct {
	deletes int64
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/":
		_, _ = io.WriteString(w, `{"message":"API de Controle de Gastos"}`)
	case r.URL.Path == "/health":
		_, _ = io.WriteString(w, `{"status":"healthy","database":"connected","categorias":2,"timestamp":"2024-03-01T10:00:00"}`)
	case r.URL.Path == "/categorias" && r.Method == http.MethodPost:
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"detail":[{"loc":["body","nome"],"msg":"field required"}]}`)
	case r.URL.Path == "/gastos" && r.Method == http.MethodGet:
		if r.URL.Query().Get("mes") == "12" {
			_, _ = io.WriteString(w, `[]`)
			return
		}
		_, _ = io.WriteString(w, `[
			{"id":"a","descricao":"Mercado","valor":100.5,"data_gasto":"2024-01-01"},
			{"id":"b","descricao":"Luz","valor":1134,"data_gasto":"2024-03-01","categoria":{"id":"1","nome":"Casa","cor":"#3498db"}}
		]`)
	case r.URL.Path == "/gastos/b" && r.Method == http.MethodDelete:
		atomic.AddInt64(&b.deletes, 1)
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	case r.URL.Path == "/relatorio/anual/2024":
		_, _ = io.WriteString(w, `{"ano":2024,"meses":[{"mes":3,"total":1134,"quantidade":1}]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func run(t *testing.T, stdin string, args ...string) (*backend, string, string, error) {
	t.Helper()
	b := &backend{}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	t.Setenv("GASTOS_API_URL", srv.URL)

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	err := cmd.ExecuteContext(context.Background())
	return b, out.String(), errOut.String(), err
}

func Test_OnList_ShouldPrintNewestFirstWithTotal(t *testing.T) {
	_, out, _, err := run(t, "", "list")

	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Luz"), strings.Index(out, "Mercado"))
	assert.Contains(t, out, "01/03/2024")
	assert.Contains(t, out, "[Casa]")
	assert.Contains(t, out, "Total: R$ 1234,50")
}

func Test_OnListEmptyMonth_ShouldPrintEmptyState(t *testing.T) {
	_, out, _, err := run(t, "", "list", "--month", "12", "--year", "2024")

	require.NoError(t, err)
	assert.Equal(t, view.EmptyTitle+"\n"+view.EmptyHint+"\n", out)
}

func Test_OnListWithMonthOnly_ShouldFail(t *testing.T) {
	_, _, _, err := run(t, "", "list", "--month", "3")

	assert.Error(t, err)
}

func Test_OnTotal_ShouldPrintSum(t *testing.T) {
	_, out, _, err := run(t, "", "total")

	require.NoError(t, err)
	assert.Equal(t, "R$ 1234,50\n", out)
}

func Test_OnDeleteAnsweredNo_ShouldNotSendRequest(t *testing.T) {
	b, out, _, err := run(t, "n\n", "delete", "b")

	require.NoError(t, err)
	assert.Contains(t, out, remote.DeletePrompt+" [s/N]")
	assert.Contains(t, out, deleteCancelledMessage)
	assert.Zero(t, atomic.LoadInt64(&b.deletes))
}

func Test_OnDeleteAnsweredYes_ShouldDeleteAndNotify(t *testing.T) {
	b, out, _, err := run(t, "s\n", "delete", "b")

	require.NoError(t, err)
	assert.Contains(t, out, remote.ExpenseDeletedMessage)
	assert.EqualValues(t, 1, atomic.LoadInt64(&b.deletes))
}

func Test_OnDeleteWithYesFlag_ShouldNotPrompt(t *testing.T) {
	b, out, _, err := run(t, "", "delete", "b", "--yes")

	require.NoError(t, err)
	assert.NotContains(t, out, remote.DeletePrompt)
	assert.EqualValues(t, 1, atomic.LoadInt64(&b.deletes))
}

func Test_OnRejectedCreate_ShouldPrintDetailOnce(t *testing.T) {
	_, out, errOut, err := run(t, "", "add", "category", "--name", "Casa")

	var reported *reportedError
	require.ErrorAs(t, err, &reported)
	assert.Empty(t, out)
	assert.Equal(t, "Erro: field required\n", errOut)
}

func Test_OnAnnualReport_ShouldPrintMonths(t *testing.T) {
	_, out, _, err := run(t, "", "report", "annual", "2024")

	require.NoError(t, err)
	assert.Contains(t, out, "03: R$ 1134,00 (1)")
}

func Test_OnStatus_ShouldPrintHealth(t *testing.T) {
	_, out, _, err := run(t, "", "status")

	require.NoError(t, err)
	assert.Contains(t, out, view.ConnectedText)
	assert.Contains(t, out, "banco de dados: connected")
	assert.Contains(t, out, "categorias: 2")
}

func Test_OnCacheClearWithoutMemcached_ShouldFail(t *testing.T) {
	_, _, _, err := run(t, "", "cache", "clear")

	assert.EqualError(t, err, "memcached não configurado")
}

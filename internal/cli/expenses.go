package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/gastos-client/internal/clients/api"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/model/remote"
	"max.ks1230/gastos-client/internal/model/state"
	"max.ks1230/gastos-client/internal/model/view"
)

const deleteCancelledMessage = "Exclusão cancelada"

func newListCommand(o *options) *cobra.Command {
	var filter api.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista os gastos, mais recentes primeiro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (filter.Month == 0) != (filter.Year == 0) {
				return errors.New("--month e --year devem ser usados juntos")
			}
			if filter.Month < 0 || filter.Month > 12 {
				return errors.Errorf("mês inválido: %d", filter.Month)
			}

			c, err := o.core()
			if err != nil {
				return err
			}
			defer c.close()

			exps, err := c.client.ListExpenses(cmd.Context(), filter)
			if err != nil {
				return o.fail(err)
			}

			v := view.Render(state.Snapshot{Expenses: exps}, view.Options{Location: c.cfg.App().Location()})
			if v.Empty != nil {
				fmt.Fprintf(o.out, "%s\n%s\n", v.Empty.Title, v.Empty.Hint)
				return nil
			}
			fmt.Fprint(o.out, view.Items(v.Items))
			fmt.Fprintf(o.out, "\nTotal: %s\n", v.Total)
			return nil
		},
	}
	cmd.Flags().IntVar(&filter.Month, "month", 0, "mês (1-12)")
	cmd.Flags().IntVar(&filter.Year, "year", 0, "ano")
	return cmd
}

func newTotalCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Mostra o total gasto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.core()
			if err != nil {
				return err
			}
			defer c.close()

			exps, err := c.client.ListExpenses(cmd.Context(), api.Filter{})
			if err != nil {
				return o.fail(err)
			}
			fmt.Fprintln(o.out, view.FormatCurrency(view.Total(exps)))
			return nil
		},
	}
}

func newDeleteCommand(o *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Exclui um gasto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.core()
			if err != nil {
				return err
			}
			defer c.close()

			var confirm remote.Confirmer = stdinConfirmer{in: o.in, out: o.out}
			if yes {
				confirm = remote.Confirmed
			}

			err = c.syncer.DeleteExpense(cmd.Context(), args[0], confirm)
			switch {
			case errors.Is(err, remote.ErrDeclined):
				fmt.Fprintln(o.out, deleteCancelledMessage)
				return nil
			case err != nil:
				return &reportedError{err: err}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "não pedir confirmação")
	return cmd
}

// stdinConfirmer asks on out and accepts "s", "sim", "y" or "yes" from in.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c stdinConfirmer) Confirm(_ context.Context, prompt string) bool {
	fmt.Fprint(c.out, prompt+" [s/N] ")
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

// parseDate accepts dd/mm/aaaa as well as ISO dates; empty means today.
func parseDate(s string, loc *time.Location) (expense.Date, error) {
	if s == "" {
		return expense.DateOf(time.Now().In(loc)), nil
	}
	if d, err := expense.ParseDisplayDate(s); err == nil {
		return d, nil
	}
	d, err := expense.ParseDate(s)
	if err != nil {
		return expense.Date{}, errors.Errorf("data inválida %q: use dd/mm/aaaa", s)
	}
	return d, nil
}

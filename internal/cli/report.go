package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/gastos-client/internal/model/view"
)

func newReportCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Relatórios gerados pelo backend",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "monthly <ano> <mes>",
			Short: "Total do mês por categoria",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				year, err := parseNumber("ano", args[0], 1, 9999)
				if err != nil {
					return err
				}
				month, err := parseNumber("mês", args[1], 1, 12)
				if err != nil {
					return err
				}

				c, err := o.core()
				if err != nil {
					return err
				}
				defer c.close()

				report, err := c.client.MonthlyReport(cmd.Context(), year, month)
				if err != nil {
					return o.fail(err)
				}
				fmt.Fprintln(o.out, view.MonthlyReportText(report))
				return nil
			},
		},
		&cobra.Command{
			Use:   "annual <ano>",
			Short: "Totais mês a mês de um ano",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				year, err := parseNumber("ano", args[0], 1, 9999)
				if err != nil {
					return err
				}

				c, err := o.core()
				if err != nil {
					return err
				}
				defer c.close()

				report, err := c.client.AnnualReport(cmd.Context(), year)
				if err != nil {
					return o.fail(err)
				}
				fmt.Fprintln(o.out, view.AnnualReportText(report))
				return nil
			},
		},
	)
	return cmd
}

func parseNumber(name, s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, errors.Errorf("%s inválido: %s", name, s)
	}
	return n, nil
}

func newStatusCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Verifica a conexão com o backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.core()
			if err != nil {
				return err
			}
			defer c.close()

			ctx := cmd.Context()
			online := c.syncer.Probe(ctx)
			fmt.Fprintf(o.out, "%s (%s)\n", view.StatusText(c.syncer.Store().Snapshot().Connection), c.client.BaseURL())
			if !online {
				return &reportedError{err: errors.New("backend offline")}
			}

			health, err := c.client.Health(ctx)
			if err != nil {
				return o.fail(err)
			}
			fmt.Fprintf(o.out, "status: %s\nbanco de dados: %s\n", health.Status, health.Database)
			if health.Categories != nil {
				fmt.Fprintf(o.out, "categorias: %d\n", *health.Categories)
			}
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/gastos-client/internal/clients/api"
	"max.ks1230/gastos-client/internal/config"
	"max.ks1230/gastos-client/internal/model/notify"
)

// reportedError has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

type options struct {
	configPath string
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
}

func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := &options{in: in, out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:           "gastos",
		Short:         "Cliente do Controle de Gastos",
		Long:          "gastos lista, soma, cria e exclui gastos no backend do Controle de Gastos.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "arquivo de configuração (padrão "+config.DefaultFile+")")

	cmd.AddCommand(
		newWatchCommand(o),
		newListCommand(o),
		newTotalCommand(o),
		newAddCommand(o),
		newDeleteCommand(o),
		newReportCommand(o),
		newStatusCommand(o),
		newCacheCommand(o),
	)
	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := NewRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, "Erro:", err)
	}
	return 1
}

func (o *options) config() (*config.Service, error) {
	cfg, err := config.New(o.configPath)
	if err != nil {
		return nil, errors.Wrap(err, "init config")
	}
	return cfg, nil
}

// core builds the shared core with notifications printed as lines.
func (o *options) core() (*core, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	return newCore(cfg, notify.NewPrinter(o.out, o.errOut))
}

// fail prints err the way a notification would and marks it as shown.
func (o *options) fail(err error) error {
	fmt.Fprintln(o.errOut, api.UserMessage(err))
	return &reportedError{err: err}
}

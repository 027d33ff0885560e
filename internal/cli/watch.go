package cli

import (
	"context"

	"github.com/spf13/cobra"
	"max.ks1230/gastos-client/internal/logger"
	"max.ks1230/gastos-client/internal/model/notify"
	"max.ks1230/gastos-client/internal/tui"
)

const defaultLogFile = "gastos.log"

func newWatchCommand(o *options) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Painel que se atualiza sozinho",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.ToFile(logFile); err != nil {
				return err
			}

			cfg, err := o.config()
			if err != nil {
				return err
			}
			board := notify.NewBoard(cfg.App().NotificationTTL())
			c, err := newCore(cfg, board)
			if err != nil {
				return err
			}
			defer c.close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			c.syncer.Warm(ctx)
			go c.syncer.Run(ctx)
			c.consume(ctx)

			return tui.Run(ctx, c.syncer, board, cfg.App())
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", defaultLogFile, "arquivo de log enquanto o painel está aberto")
	return cmd
}

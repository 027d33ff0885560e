package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/gastos-client/internal/model/state"
)

func newCacheCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Cópias locais das coleções no memcached",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Apaga as cópias salvas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.core()
			if err != nil {
				return err
			}
			defer c.close()

			if c.cache == nil {
				return errors.New("memcached não configurado")
			}
			names := make([]string, 0, len(state.Kinds))
			for _, kind := range state.Kinds {
				names = append(names, kind.String())
			}
			if err = c.cache.InvalidateCollections(names); err != nil {
				return err
			}
			fmt.Fprintln(o.out, "Cache apagado")
			return nil
		},
	})
	return cmd
}

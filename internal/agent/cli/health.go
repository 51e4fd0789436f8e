package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCmd проверяет, что сервер отвечает и его хранилище доступно.
// Токен не нужен.
//
//	contactkeeper health
//	contactkeeper health --timeout 2s
func NewHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Проверить доступность сервера",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client().Health(cmd.Context()); err != nil {
				return fmt.Errorf("server %s unavailable: %w", app.ServerURL, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

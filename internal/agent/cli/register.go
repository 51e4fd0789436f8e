package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт команду регистрации.
//
// Сервер возвращает токен сразу, поэтому после регистрации
// пользователь уже залогинен.
//
//	contactkeeper register --name "Test" --email test@example.com --password-stdin
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email string
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd)
			if err != nil {
				return err
			}

			token, err := app.Client().Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			if err := app.saveToken(token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered as %s (token saved)\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	pw.bind(cmd)
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

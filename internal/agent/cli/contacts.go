package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/utils"
)

// NewListCmd печатает контакты пользователя, новые первыми.
//
//	contactkeeper list
//	contactkeeper list --json
func NewListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список контактов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.Token()
			if err != nil {
				return err
			}
			contacts, err := app.Client().ListContacts(cmd.Context(), token)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if contacts == nil {
					contacts = []shared.Contact{}
				}
				return enc.Encode(contacts)
			}

			if len(contacts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no contacts")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tTYPE")
			for _, c := range contacts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, c.Type)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print contacts as JSON")
	return cmd
}

// NewAddCmd создаёт контакт. Повторный вызов создаёт ещё один контакт.
//
//	contactkeeper add --name Bob --phone 555-0100 --type work
func NewAddCmd(app *App) *cobra.Command {
	var req shared.CreateContactRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить контакт",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.Token()
			if err != nil {
				return err
			}
			c, err := app.Client().CreateContact(cmd.Context(), token, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created contact %s\n", c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&req.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.Type, "type", "", "category, e.g. personal or work (server default: personal)")
	cmd.MarkFlagRequired("name")

	return cmd
}

// NewUpdateCmd меняет только те поля, флаги которых переданы.
//
//	contactkeeper update <id> --phone 555-1234
func NewUpdateCmd(app *App) *cobra.Command {
	var name, email, phone, typ string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Изменить контакт",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.Token()
			if err != nil {
				return err
			}

			var req shared.UpdateContactRequest
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = utils.Ptr(name)
			}
			if flags.Changed("email") {
				req.Email = utils.Ptr(email)
			}
			if flags.Changed("phone") {
				req.Phone = utils.Ptr(phone)
			}
			if flags.Changed("type") {
				req.Type = utils.Ptr(typ)
			}
			if req == (shared.UpdateContactRequest{}) {
				return errors.New("nothing to update: pass at least one of --name, --email, --phone, --type")
			}

			c, err := app.Client().UpdateContact(cmd.Context(), token, args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated contact %s (%s)\n", c.ID, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone")
	cmd.Flags().StringVar(&typ, "type", "", "new type")

	return cmd
}

// NewDeleteCmd удаляет контакт по id.
func NewDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить контакт",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.Token()
			if err != nil {
				return err
			}
			if err := app.Client().DeleteContact(cmd.Context(), token, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted contact %s\n", args[0])
			return nil
		},
	}
}

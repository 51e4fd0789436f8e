// Package cli реализует командный интерфейс клиента Contact Keeper.
//
// Пакет отвечает за:
//   - root-команду и набор подкоманд;
//   - загрузку и сохранение токена в локальном файле;
//   - вызов API сервера и вывод результата.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/agent/api"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/agent/config"
)

// DefaultServerURL — адрес сервера по умолчанию.
const DefaultServerURL = "http://127.0.0.1:8080"

// ErrNotLoggedIn — команда требует токен, а его нет.
var ErrNotLoggedIn = errors.New("not logged in, run: contactkeeper login")

// App содержит состояние CLI, общее для всех команд.
type App struct {
	// ServerURL — базовый URL сервера.
	ServerURL string
	// Insecure — не проверять TLS сертификат сервера.
	Insecure bool
	// Timeout — таймаут одного запроса, 0 — api.DefaultTimeout.
	Timeout time.Duration

	// CredsPath — путь к файлу с токеном.
	CredsPath string
	// Creds — загруженные учётные данные.
	Creds *config.Credentials
}

// Client создаёт API-клиент с настройками приложения.
func (app *App) Client() *api.Client {
	opts := []api.Option{api.WithInsecureTLS(app.Insecure)}
	if app.Timeout > 0 {
		opts = append(opts, api.WithTimeout(app.Timeout))
	}
	return NewAPIClient(app.ServerURL, opts...)
}

// Token возвращает сохранённый токен или ErrNotLoggedIn.
func (app *App) Token() (string, error) {
	if app.Creds == nil || app.Creds.Token == "" {
		return "", ErrNotLoggedIn
	}
	return app.Creds.Token, nil
}

// saveToken сохраняет токен в памяти и в файле.
func (app *App) saveToken(token string) error {
	if app.Creds == nil {
		app.Creds = &config.Credentials{}
	}
	app.Creds.Token = token
	return config.Save(app.CredsPath, app.Creds)
}

// NewRootCmd создаёт root-команду и регистрирует подкоманды.
//
// В PersistentPreRunE определяется путь к файлу учётных данных
// (--creds или путь по умолчанию) и загружается токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "contactkeeper",
		Short: "Contact Keeper CLI: личная записная книжка контактов",
		Long: `Contact Keeper CLI.

Примеры:

Регистрация (сразу выполняет вход):
  contactkeeper register --name "Test" --email test@example.com

Логин:
  contactkeeper login --email test@example.com
  (пароль спрашивается в терминале или читается из stdin с --password-stdin)

Контакты:
  contactkeeper list
  contactkeeper add --name Bob --phone 555-0100
  contactkeeper update <id> --phone 555-1234
  contactkeeper delete <id>

Проверка сервера:
  contactkeeper health --timeout 2s
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.CredsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.CredsPath = p
			}

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return fmt.Errorf("load credentials: %w", err)
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", envOr("CONTACTKEEPER_SERVER", DefaultServerURL), "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification (dev only)")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", api.DefaultTimeout, "request timeout")
	cmd.PersistentFlags().StringVar(&app.CredsPath, "creds", "", "credentials file (default ~/.contactkeeper/credentials.json)")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewWhoAmICmd(app))
	cmd.AddCommand(NewListCmd(app))
	cmd.AddCommand(NewAddCmd(app))
	cmd.AddCommand(NewUpdateCmd(app))
	cmd.AddCommand(NewDeleteCmd(app))
	cmd.AddCommand(NewHealthCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает CLI. При ошибке печатает её в stderr и выходит с кодом 1.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

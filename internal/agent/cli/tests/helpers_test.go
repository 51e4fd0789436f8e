package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/agent/config"
)

// newApp поднимает тестовый сервер на mux и возвращает App,
// у которого файл учётных данных лежит во временной директории.
func newApp(t *testing.T, mux *http.ServeMux, token string) *cli.App {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(t.TempDir(), "credentials.json"),
		Creds:     &config.Credentials{Token: token},
	}
}

// run выполняет команду с аргументами и возвращает вывод.
func run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// stubPassword подменяет чтение пароля на время теста.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := cli.ReadPassword
	cli.ReadPassword = func(*cobra.Command, bool) (string, error) { return pw, nil }
	t.Cleanup(func() { cli.ReadPassword = orig })
}

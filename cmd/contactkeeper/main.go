// Package main содержит точку входа CLI-клиента Contact Keeper.
package main

import "github.com/IvanChernomyrdin/go-contact-keeper/internal/agent/cli"

var (
	// buildVersion задаётся при сборке через -ldflags.
	buildVersion = "dev"
	// buildDate задаётся при сборке через -ldflags.
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}

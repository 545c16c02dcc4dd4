package main

import (
	"os"

	"github.com/wonny/sockpricer/cmd/sock/commands"
)

// main is the entry point for the sockpricer CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/sock [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

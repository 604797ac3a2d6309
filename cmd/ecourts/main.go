// Command ecourts looks up Indian district court cases and cause lists.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/ecourts-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("loading .env: %v", err)
	}

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

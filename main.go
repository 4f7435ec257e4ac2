package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/supakorn-kn/library-inventory/env"
	serverError "github.com/supakorn-kn/library-inventory/errors"
	"github.com/supakorn-kn/library-inventory/intake"
)

func main() {
	os.Exit(run())
}

func run() int {

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := env.GetEnv()

	if _, err := intake.Run(context.Background(), cfg); err != nil {
		slog.Error("Generate inventory report failed", "error", err)
		return serverError.ExitCode(err)
	}

	fmt.Printf("Book processing complete. Inventory report generated in %s\n", cfg.OutputPath)

	return serverError.ExitOK
}

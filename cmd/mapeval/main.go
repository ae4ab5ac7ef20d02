package main

import (
	"log/slog"
	"os"

	"github.com/mzoric/holidays-eval/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}
}

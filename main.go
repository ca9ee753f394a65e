package main

import (
	"log/slog"
	"os"

	nbexplainify "github.com/explainify/nb-explainify/cmd/nb-explainify"
)

func main() {
	if err := nbexplainify.Execute(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

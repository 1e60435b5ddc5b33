package main

import (
	"log/slog"
	"os"

	"transcript-server-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		slog.Error("transcript exited with error", "error", err)
		os.Exit(1)
	}
}

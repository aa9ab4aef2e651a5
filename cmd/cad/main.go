// Package main is the entry point for the cad pipeline tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/joho/godotenv"
	"github.com/shirhatti/cad/cmd/cad/commands"
	"github.com/shirhatti/cad/internal/app"
	_ "github.com/shirhatti/cad/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Local overrides for GITHUB_TOKEN and friends. Absence is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.App.Close() }()

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		// zerr prints the full report with stack trace and metadata on %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}

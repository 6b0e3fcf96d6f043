package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-scheduler/internal/cli"
)

func main() {
	// SIGINT and SIGTERM cancel the running command; serve shuts down gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.DefaultBackend)

	if err := root.Execute(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

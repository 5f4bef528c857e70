package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/seanlgirgis/folio/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.ReportError(err)
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/scoutsearch/roleattrs/internal/cli"
	"github.com/scoutsearch/roleattrs/pkg/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fang.Execute(ctx, cli.NewRootCmd(),
		fang.WithVersion(version.GetVersion()),
		fang.WithCommit(version.Revision),
		fang.WithColorSchemeFunc(cli.ColorScheme),
		fang.WithErrorHandler(cli.ErrorHandler),
	)

	stop()
	os.Exit(cli.ExitCode(err))
}

// Package main is the entry point for bazelify.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/bazelify/cmd/bazelify/commands"
	"go.trai.ch/bazelify/internal/app"
	cliargs "go.trai.ch/bazelify/internal/args"
	"go.trai.ch/bazelify/internal/core/domain"
	_ "go.trai.ch/bazelify/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	logFormatter, _ := components.Logger.(commands.LogFormatter)

	cli := commands.New(components.App, logFormatter)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		if errors.Is(err, domain.ErrArgumentInvalid) {
			_, _ = fmt.Fprint(stderr, "\n"+cliargs.Usage(cliargs.DefaultSchema()))
		}
		return 1
	}
	return 0
}

// Package commands implements the CLI commands for bazelify.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bazelify/internal/adapters/logger"
	"go.trai.ch/bazelify/internal/app"
	"go.trai.ch/bazelify/internal/args"
	"go.trai.ch/bazelify/internal/build"
	"go.trai.ch/bazelify/internal/core/domain"
)

// CLI represents the command line interface for bazelify.
type CLI struct {
	app     Application
	log     LogFormatter
	schema  args.Schema
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, req domain.ResolutionRequest, opts app.ResolveOptions) (domain.ResolvedConfig, error)
}

// LogFormatter switches the log output format. It may be nil.
type LogFormatter interface {
	SetFormat(f logger.Format) error
}

// New creates a new CLI instance with the given app.
func New(a Application, log LogFormatter) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bazelify",
		Short:         "Build Dart packages with Bazel",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("log-format", string(logger.FormatAuto), "Log format: auto, pretty, or json")

	c := &CLI{
		app:     a,
		log:     log,
		schema:  args.DefaultSchema(),
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if c.log == nil {
			return nil
		}
		format, err := cmd.Flags().GetString("log-format")
		if err != nil {
			return err
		}
		return c.log.SetFormat(logger.Format(format))
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(argv []string) {
	c.rootCmd.SetArgs(argv)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bazelify/internal/app"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the bazel and pub executables and validate the package directory",
		Long: "Resolve locates the bazel and pub executables, either from the given paths or\n" +
			"on PATH, checks that the package directory contains a pubspec.yaml, and prints\n" +
			"the resolved configuration as YAML.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := c.schema.Request(cmd.Flags())
			if err != nil {
				return err
			}
			concurrent, err := cmd.Flags().GetBool("concurrent")
			if err != nil {
				return err
			}

			cfg, err := c.app.Resolve(cmd.Context(), req, app.ResolveOptions{
				Concurrent: concurrent,
			})
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(cfg); err != nil {
				return zerr.Wrap(err, "failed to write resolved configuration")
			}
			return enc.Close()
		},
	}
	c.schema.Bind(cmd.Flags())
	cmd.Flags().Bool("concurrent", false, "Run the resolution checks concurrently")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/focal/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the discovered projects and their generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("path")
			kind, _ := cmd.Flags().GetString("kind")
			return c.app.Scan(cmd.Context(), app.ScanOptions{
				Root:    root,
				Kind:    kind,
				Profile: profile(cmd),
			})
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().String("kind", "", "Only list projects of this kind: cmake, makefile or cargo")
	return cmd
}

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report which build tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context())
		},
	}
}

func (c *CLI) newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources [file.cpp]",
		Short: "Compile standalone .cpp files that belong to no project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.SourceOptions{Profile: profile(cmd)}
			if len(args) > 0 {
				opts.File = args[0]
			}
			opts.Root, _ = cmd.Flags().GetString("path")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")
			return c.app.BuildSources(cmd.Context(), opts)
		},
	}
	addProfileFlags(cmd)
	return cmd
}

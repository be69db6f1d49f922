package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [project]",
		Short: "Build one project, or every project in dependency order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), runOptions(cmd, args))
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Bool("rebuild", false, "Clean each project before building it")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [project]",
		Short: "Build, then rebuild whenever a source or build file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), runOptions(cmd, args))
		},
	}
	addRunFlags(cmd)
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [project]",
		Short: "Remove build artifacts",
		Long: `Remove build artifacts.

Without --all, each selected project runs its own clean operation.
With --all, every build, release and debug directory below --path is removed,
whether or not it belongs to a project.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all, _ := cmd.Flags().GetBool("all"); all {
				root, _ := cmd.Flags().GetString("path")
				return c.app.CleanAll(cmd.Context(), root)
			}
			return c.app.Clean(cmd.Context(), runOptions(cmd, args))
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Lookup("all").Usage = "Remove every build output directory below --path"
	return cmd
}

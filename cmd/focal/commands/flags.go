package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/focal/internal/app"
)

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("debug", false, "Build with the Debug profile")
	cmd.Flags().Bool("release", false, "Build with the Release profile (default)")
	cmd.MarkFlagsMutuallyExclusive("debug", "release")
}

// profile returns the profile selected on the command line, or "" to defer to focal.yaml.
func profile(cmd *cobra.Command) string {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return "debug"
	}
	if release, _ := cmd.Flags().GetBool("release"); release {
		return "release"
	}
	return ""
}

func addRunFlags(cmd *cobra.Command) {
	addProfileFlags(cmd)
	cmd.Flags().Bool("all", false, "Select every project, ignoring the project argument")
	cmd.Flags().String("kind", "", "Only select projects of this kind: cmake, makefile or cargo")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum number of projects built at once (0 uses every CPU)")
}

func runOptions(cmd *cobra.Command, args []string) app.RunOptions {
	opts := app.RunOptions{Profile: profile(cmd)}
	if len(args) > 0 {
		opts.Target = args[0]
	}
	opts.All, _ = cmd.Flags().GetBool("all")
	opts.Kind, _ = cmd.Flags().GetString("kind")
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	opts.Root, _ = cmd.Flags().GetString("path")
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")
	opts.OutputMode, _ = cmd.Flags().GetString("output-mode")
	if cmd.Flags().Lookup("rebuild") != nil {
		opts.Rebuild, _ = cmd.Flags().GetBool("rebuild")
	}
	return opts
}

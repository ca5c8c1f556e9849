package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aocinput/internal/buildinfo"
	"github.com/aalvaropc/aocinput/internal/infra/logger"
	"github.com/aalvaropc/aocinput/internal/infra/workspacefinder"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if hint := errorHint(err); hint != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "hint: "+hint)
		}
		os.Exit(1)
	}
}

type rootFlags struct {
	debug     bool
	workspace string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var cleanup func() error

	cmd := &cobra.Command{
		Use:           "aocinput",
		Short:         "aocinput: load and inspect puzzle input files",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cleanup = setupLogging(flags)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to .aoc/logs/aocinput.log")
	cmd.PersistentFlags().StringVarP(&flags.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		initCmd(),
		inputsCmd(flags),
		showCmd(flags),
		validateCmd(flags),
		browseCmd(flags),
		versionCmd(),
	)
	return cmd
}

// setupLogging opens the workspace log file when a workspace can be found.
// Outside a workspace the process logger stays silent.
func setupLogging(flags *rootFlags) func() error {
	root := flags.workspace
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil
		}
		found, err := workspacefinder.NewFinder().FindRoot(wd)
		if err != nil {
			return nil
		}
		root = found
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: flags.debug})
	if err != nil {
		return nil
	}
	return cleanup
}

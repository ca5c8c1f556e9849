package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aocinput/internal/infra/fsworkspace"
	"github.com/aalvaropc/aocinput/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a workspace (aoc.yaml, inputs/, .gitignore entries)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}
			if err := os.MkdirAll(root, 0o755); err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized workspace at %s\n", root)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite aoc.yaml with the template")
	return c
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func inputsCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "inputs",
		Short: "Manage input files in a workspace",
	}

	c.AddCommand(inputsListCmd(flags))
	return c
}

func inputsListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List input files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(flags.workspace)
			if err != nil {
				return err
			}

			refs, err := ws.inputs.ListInputs()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no inputs found)")
				return nil
			}

			rel, _ := filepath.Rel(ws.root, ws.inputs.Dir())
			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			fmt.Fprintf(out, "Inputs:    %s\n\n", rel)

			for _, r := range refs {
				fmt.Fprintf(out, "- %s  (%d bytes)\n", r.Name, r.Size)
			}
			return nil
		},
	}
}

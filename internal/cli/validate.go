package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/usecase"
)

func validateCmd(flags *rootFlags) *cobra.Command {
	var lf loadFlags

	c := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that an input file loads with the given shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags.workspace)
			if err != nil {
				return err
			}

			req, err := loadRequest(cmd, ws, args[0], &lf)
			if err != nil {
				return err
			}

			s, err := usecase.NewValidateInput(ws.load).Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatSummary(s))
			return nil
		},
	}

	bindLoadFlags(c, &lf, domain.ShapeInts)
	return c
}

func formatSummary(s usecase.Summary) string {
	out := fmt.Sprintf("OK  %s  %s  %s", s.Name, s.Shape, plural(s.Elements, "element"))
	if s.Groups > 0 || s.Shape == domain.ShapeGroups || s.Shape == domain.ShapeIntGroups {
		out += "  " + plural(s.Groups, "group")
	}
	if s.Shape.Numeric() {
		out += fmt.Sprintf("  sum=%d", s.Sum)
	}
	return out
}

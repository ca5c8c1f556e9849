package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/infra/logger"
	"github.com/aalvaropc/aocinput/internal/ui/tui"
)

func browseCmd(flags *rootFlags) *cobra.Command {
	var lf loadFlags

	c := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse an input file interactively",
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

			p, err := ws.load.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Loader:  ws.load,
				Request: req,
				Logger:  logger.L(),
			}, p)
		},
	}

	bindLoadFlags(c, &lf, domain.ShapeGroups)
	return c
}

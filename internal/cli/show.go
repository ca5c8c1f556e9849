package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/usecase"
)

type loadFlags struct {
	shape      string
	stripEmpty bool
}

func bindLoadFlags(c *cobra.Command, lf *loadFlags, defaultShape domain.Shape) {
	c.Flags().StringVar(&lf.shape, "as", string(defaultShape), "Shape: "+joinShapes())
	c.Flags().BoolVar(&lf.stripEmpty, "strip-empty", true, "Drop blank lines for lines/ints (defaults to the workspace setting)")
}

// loadRequest builds the use case request; an unset --strip-empty falls back
// to the workspace default.
func loadRequest(cmd *cobra.Command, ws *workspaceCtx, arg string, lf *loadFlags) (usecase.LoadRequest, error) {
	name, err := resolveInputName(ws, arg)
	if err != nil {
		return usecase.LoadRequest{}, err
	}

	shape, err := domain.ParseShape(lf.shape)
	if err != nil {
		return usecase.LoadRequest{}, err
	}

	strip := ws.cfg.Defaults.StripEmpty
	if cmd.Flags().Changed("strip-empty") {
		strip = lf.stripEmpty
	}

	return usecase.LoadRequest{Name: name, Shape: shape, StripEmpty: strip}, nil
}

func showCmd(flags *rootFlags) *cobra.Command {
	var lf loadFlags
	var format string

	c := &cobra.Command{
		Use:   "show <file>",
		Short: "Load an input file and print it",
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

			return printPayload(cmd.OutOrStdout(), p, format)
		},
	}

	bindLoadFlags(c, &lf, domain.ShapeLines)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func printPayload(w io.Writer, p domain.Payload, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "pretty", "":
		printPrettyPayload(w, p)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyPayload(w io.Writer, p domain.Payload) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Input: %s", p.Name)))
	fmt.Fprintf(w, "Path:  %s\n", p.Path)
	fmt.Fprintf(w, "Shape: %s (%s)\n\n", p.Shape, describeSize(p))

	switch p.Shape {
	case domain.ShapeLine:
		fmt.Fprintln(w, p.Line)
	case domain.ShapeInt:
		fmt.Fprintln(w, p.Int)
	case domain.ShapeLines:
		printNumbered(w, "", p.Lines)
	case domain.ShapeInts:
		printNumbered(w, "", itoaAll(p.Ints))
	case domain.ShapeGroups:
		for i, g := range p.Groups {
			fmt.Fprintf(w, "group %d (%d lines)\n", i+1, len(g))
			printNumbered(w, "  ", g)
		}
	case domain.ShapeIntGroups:
		for i, g := range p.IntGroups {
			fmt.Fprintf(w, "group %d (%d lines, sum %d)\n", i+1, len(g), sumInts(g))
			printNumbered(w, "  ", itoaAll(g))
		}
	}
}

func describeSize(p domain.Payload) string {
	switch p.Shape {
	case domain.ShapeGroups, domain.ShapeIntGroups:
		return plural(p.Len(), "group")
	case domain.ShapeLines, domain.ShapeInts:
		return plural(p.Len(), "line")
	default:
		return "first line"
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func printNumbered(w io.Writer, indent string, lines []string) {
	width := len(strconv.Itoa(len(lines)))
	for i, l := range lines {
		fmt.Fprintf(w, "%s%*d  %s\n", indent, width, i+1, l)
	}
}

func itoaAll(in []int) []string {
	out := make([]string, len(in))
	for i, n := range in {
		out[i] = strconv.Itoa(n)
	}
	return out
}

func sumInts(in []int) int {
	total := 0
	for _, n := range in {
		total += n
	}
	return total
}

func joinShapes() string {
	shapes := domain.Shapes()
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = string(s)
	}
	return strings.Join(out, "|")
}

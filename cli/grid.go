package cli

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathlab/gridgraph"
)

var gridExample = heredoc.Doc(`
	# cheapest route from S to G
	%[1]s warehouse.txt

	# draw the route with '+'
	%[1]s warehouse.txt --mark=+`)

// GridFlags are the raw command-line values of the grid routing command.
type GridFlags struct {
	Mark string
}

// GridOptions is the validated input of one grid routing run.
type GridOptions struct {
	Path string
	Mark rune

	Out io.Writer

	rawMark string
}

// ToOptions converts flags into options writing to out.
func (f *GridFlags) ToOptions(out io.Writer) *GridOptions {
	return &GridOptions{rawMark: f.Mark, Out: out}
}

// NewCmdGrid builds the grid Dijkstra command.
func NewCmdGrid(name string) *cobra.Command {
	flags := &GridFlags{Mark: string(gridgraph.PathMark)}

	cmd := &cobra.Command{
		Use:   name + " GRID_FILE",
		Short: "Cheapest 4-connected route from S to G on a character map",
		Long: heredoc.Doc(`
			Run Dijkstra over a character grid. Entering '.', '=', 'S' or 'G'
			costs 1, '~' costs 3, any other character costs 1 and '#' is a wall.

			The input starts with "<rows> <cols>" followed by exactly rows lines;
			short lines are padded with spaces and long lines are cut.`),
		Example: fmt.Sprintf(gridExample, name),
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			v, err := BindEnv(c)
			if err != nil {
				return err
			}
			o := flags.ToOptions(c.OutOrStdout())
			if err := o.Complete(v, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}

			return o.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Mark, "mark", flags.Mark, "single character drawn on route cells")
	AddLoggingFlags(cmd.Flags())

	return cmd
}

// Complete reads the file argument and env-aware flag values.
func (o *GridOptions) Complete(v *viper.Viper, args []string) error {
	o.Path = args[0]
	o.rawMark = v.GetString("mark")

	return nil
}

// Validate requires the marker to be exactly one character.
func (o *GridOptions) Validate() error {
	if utf8.RuneCountInString(o.rawMark) != 1 {
		return fmt.Errorf("--mark must be a single character, got %q", o.rawMark)
	}
	o.Mark, _ = utf8.DecodeRuneInString(o.rawMark)

	return nil
}

// Run parses the grid, searches for a route and writes the report.
func (o *GridOptions) Run() error {
	g, err := gridgraph.ReadGridFile(o.Path)
	if err != nil {
		return err
	}
	klog.V(2).Infof("loaded %s: %dx%d, start %v, goal %v", o.Path, g.Rows, g.Cols, g.Start, g.Goal)

	route, err := gridgraph.ShortestPath(g)
	if err != nil {
		return err
	}
	gridgraph.WriteReport(o.Out, g, route, o.Mark)

	return nil
}

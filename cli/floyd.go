package cli

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathlab/floydwarshall"
)

var floydExample = heredoc.Doc(`
	# pick the central vertex of graph1.txt and print the distance table
	%[1]s graph1.txt

	# also print the shortest route between vertices 1 and 7
	%[1]s graph1.txt --from=1 --to=7

	# summary only
	%[1]s graph1.txt --matrix=false`)

// FloydFlags are the raw command-line values of the Floyd–Warshall command.
type FloydFlags struct {
	Matrix   bool
	From, To int
}

// FloydOptions is the validated input of one Floyd–Warshall run.
type FloydOptions struct {
	Path     string
	Matrix   bool
	From, To int

	Out io.Writer
}

// ToOptions converts flags into options writing to out.
func (f *FloydFlags) ToOptions(out io.Writer) *FloydOptions {
	return &FloydOptions{Matrix: f.Matrix, From: f.From, To: f.To, Out: out}
}

// NewCmdFloyd builds the all-pairs shortest-path / central-vertex command.
func NewCmdFloyd(name string) *cobra.Command {
	flags := &FloydFlags{Matrix: true}

	cmd := &cobra.Command{
		Use:   name + " GRAPH_FILE",
		Short: "Find the central vertex of an undirected weighted graph",
		Long: heredoc.Doc(`
			Run Floyd–Warshall on an undirected graph and report the vertex whose
			total distance to all others is smallest, its distance vector, the
			vertex farthest from it and the full distance matrix.

			The input starts with "<n> <m>" followed by "<u> <v> <w>" lines;
			vertices are numbered 1..n, blank and '#' lines are ignored.`),
		Example: fmt.Sprintf(floydExample, name),
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

	cmd.Flags().BoolVar(&flags.Matrix, "matrix", flags.Matrix, "print the full distance matrix")
	cmd.Flags().IntVar(&flags.From, "from", 0, "source vertex of an optional path query (1..n)")
	cmd.Flags().IntVar(&flags.To, "to", 0, "target vertex of an optional path query (1..n)")
	AddLoggingFlags(cmd.Flags())

	return cmd
}

// Complete fills options from the positional file and env-aware flag values.
func (o *FloydOptions) Complete(v *viper.Viper, args []string) error {
	o.Path = args[0]
	o.Matrix = v.GetBool("matrix")
	o.From = v.GetInt("from")
	o.To = v.GetInt("to")

	return nil
}

// Validate checks that a path query names both ends or neither.
func (o *FloydOptions) Validate() error {
	if o.Path == "" {
		return fmt.Errorf("a graph file is required")
	}
	if (o.From == 0) != (o.To == 0) {
		return fmt.Errorf("--from and --to must be given together")
	}

	return nil
}

// Run parses the graph, runs Floyd–Warshall and writes the report.
func (o *FloydOptions) Run() error {
	g, err := floydwarshall.ReadGraphFile(o.Path)
	if err != nil {
		return err
	}
	klog.V(2).Infof("loaded %s: %d vertices, %d edges", o.Path, g.N, len(g.Edges))
	for _, v := range []int{o.From, o.To} {
		if v != 0 && (v < 1 || v > g.N) {
			return fmt.Errorf("path query vertex %d with n=%d: %w", v, g.N, floydwarshall.ErrVertexOutOfRange)
		}
	}

	res, err := floydwarshall.Compute(g)
	if err != nil {
		return err
	}

	return floydwarshall.WriteReport(o.Out, g, res, floydwarshall.ReportOptions{
		Matrix: o.Matrix,
		From:   o.From,
		To:     o.To,
	})
}

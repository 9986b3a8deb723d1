package cli

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathlab/bellmanford"
)

// DefaultBellmanFordFile is read when no file argument is given.
const DefaultBellmanFordFile = "graph2.txt"

var bellmanFordExample = heredoc.Doc(`
	# route from vertex 0 to vertex n-1 of ./graph2.txt
	%[1]s

	# explicit file, source and destination
	%[1]s roads.txt --source=3 --dest=0`)

// BellmanFordFlags are the raw command-line values of the Bellman–Ford command.
type BellmanFordFlags struct {
	Source int
	Dest   int
}

// BellmanFordOptions is the validated input of one Bellman–Ford run.
type BellmanFordOptions struct {
	Path   string
	Source int
	// Dest < 0 selects the last vertex, n-1.
	Dest int

	Out io.Writer
}

// ToOptions converts flags into options writing to out.
func (f *BellmanFordFlags) ToOptions(out io.Writer) *BellmanFordOptions {
	return &BellmanFordOptions{Source: f.Source, Dest: f.Dest, Out: out}
}

// NewCmdBellmanFord builds the single-source shortest-path command.
func NewCmdBellmanFord(name string) *cobra.Command {
	flags := &BellmanFordFlags{Dest: -1}

	cmd := &cobra.Command{
		Use:   name + " [GRAPH_FILE]",
		Short: "Shortest path on a directed graph that may have negative weights",
		Long: heredoc.Doc(`
			Run Bellman–Ford on a directed graph and print the cheapest path from
			--source to --dest with its total cost.

			The input is tab separated: "<n>\t<m>" followed by exactly m
			"<u>\t<v>\t<w>" lines with vertices 0..n-1 and integer weights.
			Negative cycles are not detected.`),
		Example: fmt.Sprintf(bellmanFordExample, name),
		Args:    cobra.MaximumNArgs(1),
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

	cmd.Flags().IntVar(&flags.Source, "source", 0, "source vertex (0..n-1)")
	cmd.Flags().IntVar(&flags.Dest, "dest", flags.Dest, "destination vertex (0..n-1); negative means n-1")
	AddLoggingFlags(cmd.Flags())

	return cmd
}

// Complete picks the file (default graph2.txt) and env-aware flag values.
func (o *BellmanFordOptions) Complete(v *viper.Viper, args []string) error {
	o.Path = DefaultBellmanFordFile
	if len(args) == 1 {
		o.Path = args[0]
	}
	o.Source = v.GetInt("source")
	o.Dest = v.GetInt("dest")

	return nil
}

// Validate rejects a negative source; upper bounds are checked once n is known.
func (o *BellmanFordOptions) Validate() error {
	if o.Source < 0 {
		return fmt.Errorf("--source must be >= 0, got %d", o.Source)
	}

	return nil
}

// Run parses the graph, runs Bellman–Ford and writes the path report.
func (o *BellmanFordOptions) Run() error {
	g, err := bellmanford.ReadGraphFile(o.Path)
	if err != nil {
		return err
	}
	dest := o.Dest
	if dest < 0 {
		dest = g.N - 1
	}
	if dest >= g.N {
		return fmt.Errorf("--dest %d with n=%d: %w", dest, g.N, bellmanford.ErrVertexOutOfRange)
	}
	klog.V(2).Infof("loaded %s: %d vertices, %d edges; %d -> %d", o.Path, g.N, len(g.Edges), o.Source, dest)

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(o.Source))
	if err != nil {
		return err
	}
	bellmanford.WriteReport(o.Out, res, dest)

	return nil
}

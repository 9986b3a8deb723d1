// Command bellmanford prints the shortest path between two vertices of a
// directed graph with possibly negative edge weights.
package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathlab/cli"
)

func main() {
	defer klog.Flush()

	if err := cli.NewCmdBellmanFord("bellmanford").Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

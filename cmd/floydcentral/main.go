// Command floydcentral prints the central vertex and all-pairs distances of an
// undirected weighted graph.
package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathlab/cli"
)

func main() {
	defer klog.Flush()

	if err := cli.NewCmdFloyd("floydcentral").Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

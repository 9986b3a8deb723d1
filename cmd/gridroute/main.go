// Command gridroute finds the cheapest route from S to G on a character map.
package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathlab/cli"
)

func main() {
	defer klog.Flush()

	if err := cli.NewCmdGrid("gridroute").Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

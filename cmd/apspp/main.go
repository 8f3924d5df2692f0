// SPDX-License-Identifier: MIT

// Command apspp prints the all-pairs shortest distance matrix of an
// adjacency file (default apspp.dat).
package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/apspp/cmd/apspp/app"
)

func main() {
	defer klog.Flush()

	cmd := app.NewCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}

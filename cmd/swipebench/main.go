// Command swipebench runs the banded extension engine on a synthetic
// workload and prints per-tier statistics.
//
// Usage:
//
//	swipebench run [flags]
//	swipebench cpu
//
// Examples:
//
//	swipebench run -n 20000 --threads 8
//	swipebench run --config engine.toml --traceback --metrics
//	swipebench run --generic --log-level debug
//	swipebench cpu
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

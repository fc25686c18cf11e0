// Command allpaths prints every shortest path between two nodes of a directed
// graph read from an adjacency-matrix text file.
//
//	allpaths --start 0 --end 3 graph.txt
//	allpaths --config allpaths.yaml --watch --metrics-addr :9090
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "allpaths:", err)
		stop()
		os.Exit(1)
	}
}

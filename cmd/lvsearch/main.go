// Command lvsearch runs uninformed search strategies over edge-list datasets.
//
//	lvsearch search   -F graph.txt -i 0 -f 42 --all
//	lvsearch serve    -F graph.txt.gz --addr :8080
//	lvsearch generate --topology grid --rows 30 --cols 30 --out grid.txt.gz
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

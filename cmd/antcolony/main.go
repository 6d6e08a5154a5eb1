// Command antcolony solves random travelling-salesman instances with an ant
// colony, either headless (run) or in an interactive terminal view (view).
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
		fmt.Fprintf(os.Stderr, "antcolony: %v\n", err)
		stop()
		os.Exit(1)
	}
}

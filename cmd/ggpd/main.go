// Command ggpd runs scripted patch objects outside a patching host.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gogpu/ggpd/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ggpd:", err)
		os.Exit(1)
	}
}

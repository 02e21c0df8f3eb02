package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandeepkv93/clockd/internal/app"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "clockd.yaml", "path to config yaml")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clockd failed: %v\n", err)
		os.Exit(1)
	}
	runErr := a.Run(ctx)
	closeErr := a.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "clockd failed: %v\n", runErr)
		os.Exit(1)
	}
	if closeErr != nil {
		fmt.Fprintf(os.Stderr, "clockd shutdown: %v\n", closeErr)
		os.Exit(1)
	}
}

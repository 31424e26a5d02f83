package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amirasaad/toolkit/pkg/config"
	"github.com/amirasaad/toolkit/pkg/logger"
	"github.com/fatih/color"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Failed to load configuration:", err) //nolint:errcheck
		os.Exit(1)
	}
	logger.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli{cfg: cfg, out: os.Stdout, in: os.Stdin}
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		stop()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  currency <code|numeric>")
	fmt.Println("  money <amount> [style] [locale]")
	fmt.Println("  convert <amount> <from> <to>")
	fmt.Println("  jwt <token>")
	fmt.Println("  date <iso-8601>")
	fmt.Println("  mail <to> <subject> <body>")
	fmt.Println("  hash <password>")
}

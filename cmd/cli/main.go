package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/graphwalk/internal/app"
	"github.com/vk/graphwalk/internal/cli"
	"github.com/vk/graphwalk/internal/config"
	"github.com/vk/graphwalk/internal/hclconf"
	"github.com/vk/graphwalk/internal/yamlconf"
)

// main is the entrypoint for the graphwalk application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := config.NewMultiLoader().
		Register(hclconf.NewLoader(), hclconf.Extensions...).
		Register(yamlconf.NewLoader(), yamlconf.Extensions...)

	graphApp, err := app.NewApp(outW, errW, appConfig, loader)
	if err != nil {
		return err
	}
	return graphApp.Run(context.Background())
}

package main

import (
	"fmt"
	"os"

	"github.com/serigraf/bancada/internal/cli"
	"github.com/serigraf/bancada/internal/remote"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := remote.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	actor := os.Getenv("BANCADA_ACTOR")
	if actor == "" {
		actor = os.Getenv("USER")
	}
	if actor == "" {
		actor = "balcao"
	}

	app := &cli.App{
		Remote: remote.NewClient(cfg),
		Actor:  actor,
	}

	return cli.NewRootCmd(app).Execute()
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hopfenspace/runciv/internal/doctor"
	"github.com/hopfenspace/runciv/internal/generator"
	"github.com/hopfenspace/runciv/internal/logger"
	"github.com/hopfenspace/runciv/internal/npx"
	"github.com/hopfenspace/runciv/internal/project"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// Build-time variables (set by ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load .env file if it exists (ignore errors for optional file)
	_ = godotenv.Load()

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the CLI. Running the binary without arguments regenerates
// the client.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    "genapi",
		Usage:   "Regenerate the TypeScript API client from the project's OpenAPI document",
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		Flags: []cli.Flag{
			logLevelFlag(),
			dryRunFlag(),
		},
		Action: generateAction,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Build and run the generator command (same as running without arguments)",
				Action: generateAction,
				Flags: []cli.Flag{
					logLevelFlag(),
					dryRunFlag(),
				},
			},
			{
				Name:   "doctor",
				Usage:  "Check that the Node toolchain and project files are in place",
				Action: doctorAction,
				Flags: []cli.Flag{
					logLevelFlag(),
				},
			},
		},
	}
}

// Flag constructors return fresh instances so commands never share parsed state.

func logLevelFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "Set log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}
}

func dryRunFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Print the generator command line without executing it",
	}
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	ctx, err := logger.SetupContext(ctx, cmd.String("log-level"))
	if err != nil {
		return err
	}

	layout, err := project.Locate()
	if err != nil {
		return fmt.Errorf("failed to locate project root: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Debug("Starting client generation",
		zap.String("version", Version),
		zap.String("root", layout.Root),
	)

	gen := generator.New(layout, npx.New())
	if err := gen.Generate(ctx, generator.Options{DryRun: cmd.Bool("dry-run")}); err != nil {
		return fmt.Errorf("failed to generate API client: %w", err)
	}

	return nil
}

func doctorAction(ctx context.Context, cmd *cli.Command) error {
	ctx, err := logger.SetupContext(ctx, cmd.String("log-level"))
	if err != nil {
		return err
	}

	layout, err := project.Locate()
	if err != nil {
		return fmt.Errorf("failed to locate project root: %w", err)
	}

	if err := doctor.Run(ctx, layout, npx.New()); err != nil {
		return fmt.Errorf("environment is not ready: %w", err)
	}

	logger.FromContext(ctx).Info("Environment is ready")
	return nil
}

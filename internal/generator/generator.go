package generator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hopfenspace/runciv/internal/logger"
	"github.com/hopfenspace/runciv/internal/project"

	"go.uber.org/zap"
)

// Runner executes a resolved generator invocation.
type Runner interface {
	Run(ctx context.Context, invocation Invocation) error
}

// Options control a single Generate call.
type Options struct {
	// DryRun prints the command line without executing it
	DryRun bool
}

// Generator builds the generator command for a project layout, echoes it to
// Out and hands it to a Runner.
type Generator struct {
	layout project.Layout
	runner Runner

	// Out receives the command echo. Defaults to os.Stdout.
	Out io.Writer
}

func New(layout project.Layout, runner Runner) *Generator {
	return &Generator{
		layout: layout,
		runner: runner,
		Out:    os.Stdout,
	}
}

// Generate builds the invocation, prints its command line and executes it.
// The echo always precedes the execution attempt.
func (g *Generator) Generate(ctx context.Context, opts Options) error {
	lgr := logger.FromContext(ctx)

	invocation := InvocationFor(g.layout)
	lgr.Debug("Resolved generator invocation",
		zap.String("root", g.layout.Root),
		zap.String("spec_file", invocation.SpecFile),
		zap.String("output_dir", invocation.OutputDir),
		zap.String("config_file", invocation.ConfigFile))

	fmt.Fprintln(g.Out, invocation.String())

	if opts.DryRun {
		lgr.Info("Dry run requested, skipping execution")
		return nil
	}

	if err := g.runner.Run(ctx, invocation); err != nil {
		return fmt.Errorf("generator execution failed: %w", err)
	}

	lgr.Info("Client generation completed", zap.String("output_dir", invocation.OutputDir))
	return nil
}

package npx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hopfenspace/runciv/internal/generator"
	"github.com/hopfenspace/runciv/internal/logger"

	"go.uber.org/zap"
)

// CLI wraps the npx launcher that fetches and runs the OpenAPI generator.
// It satisfies generator.Runner.
type CLI struct {
	binaryPath string
}

// New creates an npx wrapper resolving the binary through PATH.
func New() *CLI {
	return &CLI{
		binaryPath: "npx", // Ships with npm, found in PATH on any Node installation
	}
}

// Run executes the generator invocation through npx. The subordinate process
// inherits the caller's environment and standard streams and runs in the
// caller's working directory.
func (c *CLI) Run(ctx context.Context, invocation generator.Invocation) error {
	lgr := logger.FromContext(ctx)

	args := invocation.Args()
	lgr.Debug("Executing generator through npx",
		zap.String("binary_path", c.binaryPath),
		zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, c.binaryPath, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("npx execution failed: %w", err)
	}

	return nil
}

// IsAvailable checks if npx is available.
func (c *CLI) IsAvailable(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, c.binaryPath, "--version")
	return cmd.Run() == nil
}

// CheckAvailability checks if npx is available, returns error if not found.
func (c *CLI) CheckAvailability(ctx context.Context) error {
	lgr := logger.FromContext(ctx)
	lgr.Debug("Checking npx availability")

	if !c.IsAvailable(ctx) {
		return fmt.Errorf("npx command not found - please install Node.js from https://nodejs.org (npx ships with npm)")
	}

	lgr.Debug("npx is available")
	return nil
}

// Version returns the npx version.
func (c *CLI) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, c.binaryPath, "--version")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get npx version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hopfenspace/runciv/internal/logger"
	"github.com/hopfenspace/runciv/internal/npx"
	"github.com/hopfenspace/runciv/internal/project"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Run probes the toolchain and project files the generate operation relies
// on but never verifies itself. Findings from every check are aggregated into
// one returned error, nil means the environment is ready.
func Run(ctx context.Context, layout project.Layout, cli *npx.CLI) error {
	lgr := logger.FromContext(ctx)
	lgr.Info("Checking generator environment", zap.String("root", layout.Root))

	var errs error

	if version, err := toolVersion(ctx, "node"); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("node is not available - please install Node.js from https://nodejs.org"))
	} else {
		lgr.Info("Node.js is available", zap.String("version", version))
	}

	if version, err := cli.Version(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("npx is not available - it ships with npm on any Node.js installation"))
	} else {
		lgr.Info("npx is available", zap.String("version", version))
	}

	if project.FileExists(layout.SpecFile) {
		lgr.Info("OpenAPI document found", zap.String("path", layout.SpecFile))
	} else {
		errs = multierr.Append(errs, fmt.Errorf("OpenAPI document %s does not exist", layout.SpecFile))
	}

	if project.FileExists(layout.ConfigFile) {
		lgr.Info("Generator configuration found", zap.String("path", layout.ConfigFile))
	} else {
		errs = multierr.Append(errs, fmt.Errorf("generator configuration %s does not exist", layout.ConfigFile))
	}

	// The generator creates the output directory on demand, absence is not a finding
	if project.DirExists(layout.OutputDir) {
		lgr.Info("Output directory present", zap.String("path", layout.OutputDir))
	} else {
		lgr.Info("Output directory not present yet", zap.String("path", layout.OutputDir))
	}

	return errs
}

// toolVersion probes a binary through PATH and returns its trimmed --version
// output.
func toolVersion(ctx context.Context, binary string) (string, error) {
	output, err := exec.CommandContext(ctx, binary, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get %s version: %w", binary, err)
	}
	return strings.TrimSpace(string(output)), nil
}

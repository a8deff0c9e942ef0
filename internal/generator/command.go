package generator

import (
	"strings"

	"github.com/hopfenspace/runciv/internal/project"
)

// Generator invocation literals. Only the three path arguments vary per
// layout; everything else is fixed.
const (
	// LauncherBinary is the Node package runner used to execute the generator
	LauncherBinary = "npx"

	// GeneratorPackage is the npm entry point of the OpenAPI generator CLI
	GeneratorPackage = "@openapitools/openapi-generator-cli"

	// GenerateCommand is the generator CLI subcommand
	GenerateCommand = "generate"

	// TargetFlavor selects the fetch-based TypeScript client
	TargetFlavor = "typescript-fetch"
)

// Invocation is one fully resolved generator command.
type Invocation struct {
	SpecFile   string
	OutputDir  string
	ConfigFile string
}

// InvocationFor builds the invocation for a project layout.
func InvocationFor(layout project.Layout) Invocation {
	return Invocation{
		SpecFile:   layout.SpecFile,
		OutputDir:  layout.OutputDir,
		ConfigFile: layout.ConfigFile,
	}
}

// Args returns the argument vector passed to the launcher binary.
func (i Invocation) Args() []string {
	return []string{
		GeneratorPackage,
		GenerateCommand,
		"-g", TargetFlavor,
		"-i", i.SpecFile,
		"-o", i.OutputDir,
		"-c", i.ConfigFile,
	}
}

// String renders the command line as it is echoed before execution. Paths
// are interpolated verbatim without quoting, so the echoed line is not
// guaranteed to survive a shell round trip when paths contain spaces.
func (i Invocation) String() string {
	return LauncherBinary + " " + strings.Join(i.Args(), " ")
}

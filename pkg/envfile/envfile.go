// Package envfile writes the .vscode/.env file that points editors at the tools of the virtual
// environment.
package envfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/voxium/voxium/tools/pkg/logging"
)

// Tools are the executables exported to the env file.
var Tools = []string{"clang-format", "clang-tidy", "cmake", "conan"}

// LookupFunc resolves the path of a tool. venv.Env.ExecutablePath satisfies it.
type LookupFunc func(ctx context.Context, name string) (string, error)

// VarName returns the variable used for tool, e.g. CLANG_FORMAT_PATH.
func VarName(tool string) string {
	return strings.ToUpper(strings.ReplaceAll(tool, "-", "_")) + "_PATH"
}

// Generate writes <root>/.vscode/.env and returns its path. Tools that can't be found are skipped
// with a warning.
func Generate(ctx context.Context, root string, lookup LookupFunc) (string, error) {
	log := logging.Log(ctx)

	var content strings.Builder
	for _, tool := range Tools {
		path, err := lookup(ctx, tool)
		if err != nil {
			log.Warn().Err(err).Msgf("%s not found in .venv.", tool)
			continue
		}

		fmt.Fprintf(&content, "%s=%s\n", VarName(tool), path)
	}

	vscodeDir := filepath.Join(root, ".vscode")
	if err := os.MkdirAll(vscodeDir, 0o755); err != nil {
		return "", eris.Wrapf(err, "Failed to create %s", vscodeDir)
	}

	envPath := filepath.Join(vscodeDir, ".env")
	if err := os.WriteFile(envPath, []byte(content.String()), 0o644); err != nil {
		return "", eris.Wrapf(err, "Failed to write %s", envPath)
	}

	log.Info().Msgf(".env file has been generated at: %s", envPath)
	return envPath, nil
}

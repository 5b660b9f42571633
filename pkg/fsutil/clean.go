// Package fsutil contains the filesystem helpers behind the clean, tree and gitkeep commands.
package fsutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/voxium/voxium/tools/pkg/logging"
)

// Clean removes a file or a directory tree. Missing targets are not an error. With dryRun set,
// nothing is deleted and only the intended removal is logged.
func Clean(ctx context.Context, target string, dryRun bool) error {
	log := logging.Log(ctx)

	path, err := filepath.Abs(target)
	if err != nil {
		return eris.Wrapf(err, "Failed to resolve %s", target)
	}

	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info().Str("path", path).Msgf("Target does not exist, nothing to clean: %s", path)
			return nil
		}

		return eris.Wrapf(err, "Could not stat %s", path)
	}

	if dryRun {
		log.Info().Str("path", path).Msgf("Would remove: %s", path)
		return nil
	}

	switch {
	case info.Mode().IsRegular() || info.Mode()&os.ModeSymlink != 0:
		if err := os.Remove(path); err != nil {
			log.Error().Err(err).Str("path", path).Msgf("Failed to remove file: %s", path)
			return eris.Wrapf(err, "Could not delete %s", path)
		}
		log.Info().Str("path", path).Msgf("File removed: %s", path)
	case info.IsDir():
		if err := os.RemoveAll(path); err != nil {
			log.Error().Err(err).Str("path", path).Msgf("Failed to remove directory: %s", path)
			return eris.Wrapf(err, "Could not delete %s", path)
		}
		log.Info().Str("path", path).Msgf("Directory removed: %s", path)
	default:
		log.Warn().Str("path", path).Msgf("Target is neither a file nor a directory: %s", path)
	}

	return nil
}

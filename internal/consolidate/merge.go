package consolidate

import (
	"log/slog"
	"os"
	"path/filepath"

	"reshelve/internal/fileutil"
	"reshelve/internal/logging"
)

// mergeContents moves every entry of source into destination. Conflicting
// files are skipped with a warning; conflicting directories are merged
// recursively. Source directories are removed post-order and only once
// empty, so a partially merged source is never lost.
func mergeContents(source, destination string, logger *slog.Logger) {
	entries, err := os.ReadDir(source)
	if err != nil {
		logger.Warn("cannot read source directory", logging.String(logging.FieldPath, source), logging.Error(err))
		return
	}

	for _, entry := range entries {
		srcPath := filepath.Join(source, entry.Name())
		dstPath := filepath.Join(destination, entry.Name())

		if entry.IsDir() {
			if info, statErr := os.Stat(dstPath); statErr == nil && info.IsDir() {
				mergeContents(srcPath, dstPath, logger)
				if empty, emptyErr := fileutil.IsEmptyDir(srcPath); emptyErr == nil && empty {
					if removeErr := os.Remove(srcPath); removeErr != nil {
						logger.Warn("cannot remove merged directory", logging.String(logging.FieldPath, srcPath), logging.Error(removeErr))
					}
				}
				continue
			}
			if moveErr := fileutil.MoveEntry(srcPath, dstPath); moveErr != nil {
				logger.Warn("cannot move directory", logging.String(logging.FieldPath, srcPath), logging.Error(moveErr))
			}
			continue
		}

		if _, statErr := os.Lstat(dstPath); statErr == nil {
			logger.Warn("file already exists, skipping", logging.String(logging.FieldPath, dstPath))
			continue
		}
		if moveErr := fileutil.MoveFile(srcPath, dstPath); moveErr != nil {
			logger.Warn("cannot move file", logging.String(logging.FieldPath, srcPath), logging.Error(moveErr))
		}
	}

	if empty, emptyErr := fileutil.IsEmptyDir(source); emptyErr == nil && empty {
		if removeErr := os.Remove(source); removeErr != nil {
			logger.Warn("cannot remove empty directory", logging.String(logging.FieldPath, source), logging.Error(removeErr))
		} else {
			logger.Debug("removed empty directory", logging.String(logging.FieldPath, source))
		}
	}
}

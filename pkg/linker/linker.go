package linker

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/cfglink/pkg/errors"
	"github.com/arthur-debert/cfglink/pkg/logging"
	"github.com/arthur-debert/cfglink/pkg/types"
)

// Linker materializes one FileEntry at a time as a symlink under the
// target root. A zero dryRun Linker mutates the filesystem; per-entry
// failures are reported in the LinkResult and never abort the run.
type Linker struct {
	fs         types.FS
	targetRoot string
	dryRun     bool
	logger     zerolog.Logger
}

// New creates a Linker writing links under targetRoot via fs.
func New(fs types.FS, targetRoot string, dryRun bool) *Linker {
	return &Linker{
		fs:         fs,
		targetRoot: targetRoot,
		dryRun:     dryRun,
		logger:     logging.GetLogger("linker"),
	}
}

// Link ensures a symlink for entry exists at targetRoot/RelativePath.
//
// Existing files, symlinks, and broken symlinks at the target path are
// replaced without being followed. A directory at the target path is a
// failure; directories are never removed. A link that already points at
// the source is left alone and still counts as linked.
func (l *Linker) Link(entry FileEntry) LinkResult {
	result := LinkResult{
		Entry:      entry,
		TargetPath: filepath.Join(l.targetRoot, entry.RelativePath),
	}

	if l.dryRun {
		result.Status = StatusWouldLink
		l.logger.Debug().
			Str("target", result.TargetPath).
			Str("source", entry.SourcePath).
			Msg("dry run, skipping link")
		return result
	}

	parentDir := filepath.Dir(result.TargetPath)
	if _, err := l.fs.Lstat(parentDir); err != nil {
		if err := l.fs.MkdirAll(parentDir, 0755); err != nil {
			result.Status = StatusFailed
			result.Err = errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create directory %q", parentDir)
			return result
		}
		result.CreatedDir = parentDir
	}

	// Already pointing at the source: nothing to do.
	if current, err := l.fs.Readlink(result.TargetPath); err == nil && current == entry.SourcePath {
		result.Status = StatusLinked
		return result
	}

	if info, err := l.fs.Lstat(result.TargetPath); err == nil {
		if info.IsDir() {
			result.Status = StatusFailed
			result.Err = errors.Newf(errors.ErrTargetIsDir,
				"target %q is a directory", result.TargetPath)
			return result
		}
		if err := l.fs.Remove(result.TargetPath); err != nil {
			result.Status = StatusFailed
			result.Err = errors.Wrapf(err, errors.ErrSymlinkCreate,
				"failed to replace %q", result.TargetPath)
			return result
		}
	} else if !os.IsNotExist(err) {
		result.Status = StatusFailed
		result.Err = errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to inspect %q", result.TargetPath)
		return result
	}

	if err := l.fs.Symlink(entry.SourcePath, result.TargetPath); err != nil {
		result.Status = StatusFailed
		result.Err = errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to create symlink %q", result.TargetPath)
		return result
	}

	result.Status = StatusLinked
	l.logger.Debug().
		Str("target", result.TargetPath).
		Str("source", entry.SourcePath).
		Msg("symlink created")
	return result
}

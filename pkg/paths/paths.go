// Package paths resolves the source and target roots for a run.
//
// Both roots are fixed once at startup. The source root defaults to the
// directory containing the running executable, so a config repository can
// ship the binary alongside the files it publishes. The target root
// defaults to the XDG config home, in a subdirectory named after the
// source root.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/cfglink/pkg/errors"
)

// Environment variable names
const (
	// EnvSourceRoot overrides the directory whose files are published
	EnvSourceRoot = "CFGLINK_SOURCE_ROOT"

	// EnvTargetRoot overrides the directory that receives the symlink tree
	EnvTargetRoot = "CFGLINK_TARGET_ROOT"
)

// AppDirName is the directory name for cfglink-specific files (logs).
const AppDirName = "cfglink"

// LogFileName is the name of the log file.
const LogFileName = "cfglink.log"

// Paths holds the resolved roots for a run.
type Paths struct {
	sourceRoot string
	targetRoot string
}

// New resolves the source and target roots. Empty arguments fall back to
// the CFGLINK_SOURCE_ROOT / CFGLINK_TARGET_ROOT environment variables and
// then to the built-in defaults.
func New(sourceRoot, targetRoot string) (*Paths, error) {
	src := sourceRoot
	if src == "" {
		src = os.Getenv(EnvSourceRoot)
	}
	if src == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrSourceResolve, "failed to locate executable")
		}
		resolved, err := filepath.EvalSymlinks(exe)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrSourceResolve, "failed to resolve executable path")
		}
		src = filepath.Dir(resolved)
	}

	abs, err := filepath.Abs(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceResolve, "failed to resolve source root %q", src)
	}
	src = abs

	info, err := os.Stat(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceResolve, "source root %q is not accessible", src)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "source root %q is not a directory", src)
	}

	tgt := targetRoot
	if tgt == "" {
		tgt = os.Getenv(EnvTargetRoot)
	}
	if tgt == "" {
		tgt = filepath.Join(xdg.ConfigHome, filepath.Base(src))
	}
	if tgt, err = filepath.Abs(tgt); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve target root %q", targetRoot)
	}

	return &Paths{sourceRoot: src, targetRoot: tgt}, nil
}

// SourceRoot returns the absolute path of the directory being published.
func (p *Paths) SourceRoot() string {
	return p.sourceRoot
}

// TargetRoot returns the absolute path that receives the symlink tree.
func (p *Paths) TargetRoot() string {
	return p.targetRoot
}

// LogFilePath returns the path of the log file under the XDG state dir.
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

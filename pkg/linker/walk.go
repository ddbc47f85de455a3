package linker

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/cfglink/pkg/errors"
	"github.com/arthur-debert/cfglink/pkg/logging"
)

// ExclusionSet holds entry names skipped during traversal. Matching is by
// base name at any depth; a matching directory is pruned with its whole
// subtree.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds an ExclusionSet from a list of names.
func NewExclusionSet(names []string) ExclusionSet {
	set := make(ExclusionSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is excluded.
func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Walk performs a depth-first traversal of root and calls visit once per
// regular file that is not pruned by exclude. Symlinks and other
// non-regular entries under root are never emitted. The walk root itself
// is never matched against the exclusion set.
//
// A traversal error (unreadable directory, vanished entry) aborts the
// walk and is returned as an ErrTraversal-coded error; it is never
// downgraded to a per-entry failure.
func Walk(root string, exclude ExclusionSet, visit func(FileEntry) error) error {
	logger := logging.GetLogger("linker.walk")

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrTraversal, "failed to read %q", path)
		}
		if path == root {
			return nil
		}

		if exclude.Contains(d.Name()) {
			logger.Debug().Str("path", path).Msg("pruned excluded entry")
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return errors.Wrapf(relErr, errors.ErrTraversal, "failed to relativize %q", path)
		}

		return visit(FileEntry{SourcePath: path, RelativePath: rel})
	})

	if err != nil && !errors.IsErrorCode(err, errors.ErrTraversal) {
		// visit callbacks and WalkDir internals may surface plain errors
		err = errors.Wrapf(err, errors.ErrTraversal, "traversal of %q aborted", root)
	}
	return err
}

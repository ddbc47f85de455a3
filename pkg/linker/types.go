package linker

// FileEntry is a regular file discovered under the source root.
type FileEntry struct {
	// SourcePath is the absolute path of the file.
	SourcePath string

	// RelativePath is SourcePath minus the source root prefix. It decides
	// the file's mirrored location under the target root.
	RelativePath string
}

// LinkStatus is the outcome of one link attempt.
type LinkStatus int

const (
	// StatusLinked means the symlink exists at the target and points at
	// the source (created, replaced, or already correct).
	StatusLinked LinkStatus = iota

	// StatusWouldLink means a dry run skipped the mutation.
	StatusWouldLink

	// StatusFailed means the link could not be made.
	StatusFailed
)

func (s LinkStatus) String() string {
	switch s {
	case StatusLinked:
		return "linked"
	case StatusWouldLink:
		return "would-link"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// LinkResult describes the outcome of materializing one FileEntry.
type LinkResult struct {
	Entry      FileEntry
	TargetPath string
	Status     LinkStatus

	// CreatedDir is the parent directory that had to be created for the
	// target, or empty if it already existed.
	CreatedDir string

	// Err is set when Status is StatusFailed.
	Err error
}

// Summary aggregates the outcome of a whole run. It is produced once per
// invocation and never persisted.
type Summary struct {
	DryRun    bool
	Processed int
	Linked    int
	Failed    int
}

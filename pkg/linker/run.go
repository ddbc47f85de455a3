package linker

import (
	"github.com/arthur-debert/cfglink/pkg/logging"
	"github.com/arthur-debert/cfglink/pkg/types"
)

// Reporter receives user-facing events as a run progresses. Failures are
// reported immediately, not batched.
type Reporter interface {
	CreatedDir(path string)
	Linked(target, source string)
	WouldLink(target, source string)
	Failed(target, source string, err error)
	Summary(dryRun bool, processed, linked, failed int)
}

// nopReporter discards all events.
type nopReporter struct{}

func (nopReporter) CreatedDir(string)            {}
func (nopReporter) Linked(string, string)        {}
func (nopReporter) WouldLink(string, string)     {}
func (nopReporter) Failed(string, string, error) {}
func (nopReporter) Summary(bool, int, int, int)  {}

// Options configures a run.
type Options struct {
	SourceRoot string
	TargetRoot string
	Exclude    []string
	DryRun     bool

	// FS is the filesystem used for mutations.
	FS types.FS

	// Reporter receives progress events; nil discards them.
	Reporter Reporter
}

// Run walks opts.SourceRoot and links every discovered file under
// opts.TargetRoot, one entry at a time. It returns the run summary, or an
// error if traversal aborted. Per-entry failures are counted in the
// summary and never stop the run.
func Run(opts Options) (*Summary, error) {
	logger := logging.GetLogger("linker.run")

	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	exclude := NewExclusionSet(opts.Exclude)
	lnk := New(opts.FS, opts.TargetRoot, opts.DryRun)
	summary := &Summary{DryRun: opts.DryRun}

	logger.Info().
		Str("source", opts.SourceRoot).
		Str("target", opts.TargetRoot).
		Strs("exclude", opts.Exclude).
		Bool("dryRun", opts.DryRun).
		Msg("run started")

	err := Walk(opts.SourceRoot, exclude, func(entry FileEntry) error {
		summary.Processed++
		result := lnk.Link(entry)

		if result.CreatedDir != "" {
			reporter.CreatedDir(result.CreatedDir)
		}

		switch result.Status {
		case StatusLinked:
			summary.Linked++
			reporter.Linked(result.TargetPath, entry.SourcePath)
		case StatusWouldLink:
			summary.Linked++
			reporter.WouldLink(result.TargetPath, entry.SourcePath)
		case StatusFailed:
			summary.Failed++
			reporter.Failed(result.TargetPath, entry.SourcePath, result.Err)
			logger.Error().
				Err(result.Err).
				Str("target", result.TargetPath).
				Str("source", entry.SourcePath).
				Msg("link failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	reporter.Summary(summary.DryRun, summary.Processed, summary.Linked, summary.Failed)
	logger.Info().
		Int("processed", summary.Processed).
		Int("linked", summary.Linked).
		Int("failed", summary.Failed).
		Msg("run finished")

	return summary, nil
}

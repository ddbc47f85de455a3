// Package linker implements cfglink's core: walking a source tree and
// mirroring every regular file as a symbolic link under a target root.
//
// The package is split along the run's three phases: traversal (walk.go)
// discovers files while pruning excluded names, the per-entry linker
// (linker.go) materializes one symlink with replace semantics, and the
// orchestrator (run.go) drives both sequentially and accumulates the
// summary. Linking is commutative, so traversal order is not guaranteed.
package linker

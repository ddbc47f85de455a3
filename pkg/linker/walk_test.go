package linker_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cfglink/pkg/errors"
	"github.com/arthur-debert/cfglink/pkg/linker"
)

// writeFile creates a file (and its parents) under root.
func writeFile(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	return path
}

// collect walks root and returns the emitted relative paths, sorted.
func collect(t *testing.T, root string, exclude []string) []string {
	t.Helper()
	var got []string
	err := linker.Walk(root, linker.NewExclusionSet(exclude), func(entry linker.FileEntry) error {
		got = append(got, filepath.ToSlash(entry.RelativePath))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(got)
	return got
}

func TestWalk_EmitsRegularFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "layout/default.kdl")
	writeFile(t, root, "themes/dark.kdl")
	writeFile(t, root, "config.kdl")

	got := collect(t, root, nil)
	assert.Equal(t, []string{"config.kdl", "layout/default.kdl", "themes/dark.kdl"}, got)
}

func TestWalk_PrunesExcludedNames(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		exclude []string
		want    []string
	}{
		{
			name:    "excluded directory at top level",
			files:   []string{"layout/default.kdl", ".git/config", ".git/objects/ab/cd"},
			exclude: []string{".git"},
			want:    []string{"layout/default.kdl"},
		},
		{
			name:    "excluded directory nested deep",
			files:   []string{"a/b/.git/config", "a/b/keep.conf"},
			exclude: []string{".git"},
			want:    []string{"a/b/keep.conf"},
		},
		{
			name:    "excluded file by name anywhere",
			files:   []string{"a/ignore.me", "b/ignore.me", "b/keep.me"},
			exclude: []string{"ignore.me"},
			want:    []string{"b/keep.me"},
		},
		{
			name:    "contents of excluded dir never match by own name",
			files:   []string{"skipme/keep.me", "keep.me"},
			exclude: []string{"skipme"},
			want:    []string{"keep.me"},
		},
		{
			name:    "multiple exclusions",
			files:   []string{".git/config", ".svn/entries", "rc"},
			exclude: []string{".git", ".svn"},
			want:    []string{"rc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, f := range tt.files {
				writeFile(t, root, f)
			}
			assert.Equal(t, tt.want, collect(t, root, tt.exclude))
		})
	}
}

func TestWalk_RootNameNeverExcluded(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, ".git")
	writeFile(t, root, "rc")

	got := collect(t, root, []string{".git"})
	assert.Equal(t, []string{"rc"}, got)
}

func TestWalk_SkipsNonRegularEntries(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, root, "real.conf")
	require.NoError(t, os.Symlink(target, filepath.Join(root, "alias.conf")))

	got := collect(t, root, nil)
	assert.Equal(t, []string{"real.conf"}, got)
}

func TestWalk_VisitErrorAborts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.conf")
	writeFile(t, root, "b.conf")

	visits := 0
	err := linker.Walk(root, nil, func(entry linker.FileEntry) error {
		visits++
		return errors.New(errors.ErrTraversal, "boom")
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTraversal))
	assert.Equal(t, 1, visits)
}

func TestWalk_MissingRootIsTraversalError(t *testing.T) {
	err := linker.Walk(filepath.Join(t.TempDir(), "nope"), nil, func(linker.FileEntry) error {
		t.Fatal("visit should not be called")
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTraversal))
}

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cfglink/pkg/errors"
	"github.com/arthur-debert/cfglink/pkg/paths"
)

func TestNew_ExplicitRoots(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()

	p, err := paths.New(src, tgt)
	require.NoError(t, err)

	assert.Equal(t, src, p.SourceRoot())
	assert.Equal(t, tgt, p.TargetRoot())
}

func TestNew_EnvOverrides(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()
	t.Setenv(paths.EnvSourceRoot, src)
	t.Setenv(paths.EnvTargetRoot, tgt)

	p, err := paths.New("", "")
	require.NoError(t, err)

	assert.Equal(t, src, p.SourceRoot())
	assert.Equal(t, tgt, p.TargetRoot())
}

func TestNew_DefaultTargetUsesConfigHome(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	parent := t.TempDir()
	src := filepath.Join(parent, "zellij")
	require.NoError(t, os.MkdirAll(src, 0755))

	p, err := paths.New(src, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configHome, "zellij"), p.TargetRoot())
}

func TestNew_SourceMustExist(t *testing.T) {
	_, err := paths.New(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceResolve))
}

func TestNew_SourceMustBeDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "afile")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := paths.New(file, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLogFilePath(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	assert.Equal(t, filepath.Join(stateHome, "cfglink", "cfglink.log"), paths.LogFilePath())
}

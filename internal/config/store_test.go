package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReloadSuccessReplacesConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/cfg/config.toml", "[keys]\nquit = \"x\"\n")

	load := func() (*Config, error) { return LoadFs(fsys, "/cfg/config.toml") }
	initial, err := load()
	require.NoError(t, err)

	store := NewStore(initial, load)
	assert.Equal(t, "x", store.Current().Keys.Quit)

	writeFile(t, fsys, "/cfg/config.toml", "[keys]\nquit = \"ctrl-q\"\n")
	require.NoError(t, store.Reload())
	assert.Equal(t, "ctrl-q", store.Current().Keys.Quit)
	assert.Equal(t, "x", initial.Keys.Quit, "previous snapshot is never mutated")
}

func TestStore_ReloadFailureKeepsConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/cfg/config.toml", "[keys]\nquit = \"x\"\n")

	load := func() (*Config, error) { return LoadFs(fsys, "/cfg/config.toml") }
	initial, err := load()
	require.NoError(t, err)
	store := NewStore(initial, load)

	writeFile(t, fsys, "/cfg/config.toml", "this is = = not toml")
	err = store.Reload()
	require.Error(t, err)
	assert.Same(t, initial, store.Current())

	require.NoError(t, fsys.Remove("/cfg/config.toml"))
	err = store.Reload()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
	assert.Same(t, initial, store.Current())
}

func TestStore_NilInitialUsesDefault(t *testing.T) {
	store := NewStore(nil, nil)
	assert.Equal(t, Default(), store.Current())
	assert.NoError(t, store.Reload())
}

package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customConfig = `
[theme]
directory = "Yellow"

[keys]
quit = "ctrl-q"
down = "n"

[browser]
search_mode = "fuzzy"
hide = [".git", "*.tmp"]

[log]
level = "debug"
`

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
}

func TestLoadFs_ExplicitPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/etc/dirnav/custom.toml", customConfig)

	cfg, err := LoadFs(fsys, "/etc/dirnav/custom.toml")
	require.NoError(t, err)

	assert.Equal(t, "ctrl-q", cfg.Keys.Quit)
	assert.Equal(t, "n", cfg.Keys.Down)
	assert.Equal(t, "k", cfg.Keys.Up, "unset keys keep defaults")
	assert.Equal(t, "Yellow", cfg.Theme.Directory)
	assert.Equal(t, "> ", cfg.Theme.HighlightSymbol)
	assert.Equal(t, SearchFuzzy, cfg.Browser.SearchMode)
	assert.Equal(t, []string{".git", "*.tmp"}, cfg.Browser.Hide)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFs_SearchPathOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/second/config.toml", "[keys]\nquit = \"x\"\n")
	writeFile(t, fsys, "/third/config.toml", "[keys]\nquit = \"z\"\n")

	cfg, err := LoadFs(fsys, "", "/first", "/second", "/third")
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Keys.Quit)
}

func TestLoadFs_NotFound(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := LoadFs(fsys, "", "/nowhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))

	_, err = LoadFs(fsys, "/nowhere/config.toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoadFs_SyntaxError(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/cfg/config.toml", "[keys\nquit = ")

	_, err := LoadFs(fsys, "/cfg/config.toml")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFs_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad binding", "[keys]\nquit = \"shift-q\"\n", "keys config validation failed"},
		{"empty binding", "[keys]\nsubmit = \"\"\n", "submit"},
		{"bad search mode", "[browser]\nsearch_mode = \"regex\"\n", "invalid search_mode"},
		{"bad hide glob", "[browser]\nhide = [\"[abc\"]\n", "invalid hide pattern"},
		{"bad log level", "[log]\nlevel = \"loud\"\n", "invalid log level"},
		{"bad log format", "[log]\nformat = \"xml\"\n", "invalid log format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeFile(t, fsys, "/cfg/config.toml", tc.content)

			_, err := LoadFs(fsys, "/cfg/config.toml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadFs_EnvOverride(t *testing.T) {
	t.Setenv("DIRNAV_KEYS_QUIT", "ctrl-x")
	t.Setenv("DIRNAV_LOG_FORMAT", "json")

	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/cfg/config.toml", customConfig)

	cfg, err := LoadFs(fsys, "/cfg/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "ctrl-x", cfg.Keys.Quit)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestDefault_MatchesEmbeddedTOML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(DefaultTOML())))

	var embedded Config
	require.NoError(t, v.Unmarshal(&embedded))

	def := Default()
	assert.Equal(t, def.Theme, embedded.Theme)
	assert.Equal(t, def.Keys, embedded.Keys)
	assert.Equal(t, def.Log, embedded.Log)
	assert.Equal(t, def.Browser.SearchMode, embedded.Browser.SearchMode)
	assert.Empty(t, embedded.Browser.Hide)
	assert.Empty(t, def.Browser.Hide)
	require.NoError(t, Validate(def))
}

func TestKeysConfig_Table(t *testing.T) {
	table := Default().Keys.Table()
	assert.Len(t, table, 14)
	assert.Equal(t, "F5", table["reload"])
	assert.Equal(t, "backspace", table["back_dir"])
}

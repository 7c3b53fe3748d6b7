package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zackbart/browse/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadValidFile(t *testing.T) {
	path := writeConfig(t, `
locale = "ja"

[view]
tab_width = 8
theme = "monokai"
markdown = true
markdown_wrap = 72

[listing]
sort = "name"
skip_unreadable = true

[log]
file = "/tmp/browse.log"
level = "debug"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ja", cfg.Locale)
	assert.Equal(t, 8, cfg.View.TabWidth)
	assert.Equal(t, "monokai", cfg.View.Theme)
	assert.True(t, cfg.View.Markdown)
	assert.Equal(t, 72, cfg.View.MarkdownWrap)
	assert.Equal(t, config.SortName, cfg.Listing.Sort)
	assert.True(t, cfg.Listing.SkipUnreadable)
	assert.Equal(t, "/tmp/browse.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[listing]
skip_unreadable = true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Listing.SkipUnreadable)
	assert.Equal(t, config.DefaultTabWidth, cfg.View.TabWidth)
	assert.Equal(t, config.DefaultTheme, cfg.View.Theme)
	assert.Equal(t, config.SortNone, cfg.Listing.Sort)
}

func TestLoadRepairsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[view]
tab_width = -3
theme = ""
markdown_wrap = 5

[listing]
sort = "size"

[log]
level = ""
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTabWidth, cfg.View.TabWidth)
	assert.Equal(t, config.DefaultTheme, cfg.View.Theme)
	assert.Equal(t, config.DefaultMarkdownWrap, cfg.View.MarkdownWrap)
	assert.Equal(t, config.SortNone, cfg.Listing.Sort)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[view\ntab_width = ")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"2", 2},
		{"8", 8},
		{"0", 0},
		{"", config.DefaultTabWidth},
		{"abc", config.DefaultTabWidth},
		{"-1", config.DefaultTabWidth},
		{"3.5", config.DefaultTabWidth},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, config.ParseSpace(tt.raw))
		})
	}
}

func TestDefaultPath(t *testing.T) {
	path := config.DefaultPath()
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, "browse", filepath.Base(filepath.Dir(path)))
}

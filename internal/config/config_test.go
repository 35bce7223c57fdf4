package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chmouel/wikitodo/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "~/vimwiki", cfg.WikiDir)
	assert.Equal(t, "index", cfg.IndexFile)
	assert.Equal(t, ".wiki", cfg.Extension)
	assert.Equal(t, theme.GruvboxDarkName, cfg.Theme)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.False(t, cfg.ShowIcons)
	assert.Zero(t, cfg.MaxTextWidth)
	assert.Empty(t, cfg.DebugLog)
}

func TestIndexPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WikiDir = "/home/me/vimwiki"

	assert.Equal(t, filepath.Join("/home/me/vimwiki", "index.wiki"), cfg.IndexPath())

	cfg.IndexFile = "main.wiki"
	assert.Equal(t, filepath.Join("/home/me/vimwiki", "main.wiki"), cfg.IndexPath())

	cfg.IndexFile = "/elsewhere/root"
	assert.Equal(t, "/elsewhere/root.wiki", cfg.IndexPath())
}

func TestExpandPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.DebugLog = "~/wikitodo.log"
	require.NoError(t, cfg.ExpandPaths())

	assert.Equal(t, filepath.Join(home, "vimwiki"), cfg.WikiDir)
	assert.Equal(t, filepath.Join(home, "wikitodo.log"), cfg.DebugLog)
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		defaultVal bool
		expected   bool
	}{
		{name: "nil uses default", input: nil, defaultVal: true, expected: true},
		{name: "bool true", input: true, defaultVal: false, expected: true},
		{name: "int zero", input: 0, defaultVal: true, expected: false},
		{name: "int64 one", input: int64(1), defaultVal: false, expected: true},
		{name: "string yes", input: "yes", defaultVal: false, expected: true},
		{name: "string off", input: " off ", defaultVal: true, expected: false},
		{name: "garbage uses default", input: "maybe", defaultVal: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceBool(tt.input, tt.defaultVal))
		})
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		defaultVal int
		expected   int
	}{
		{name: "nil uses default", input: nil, defaultVal: 7, expected: 7},
		{name: "int", input: 42, defaultVal: 0, expected: 42},
		{name: "int64 from toml", input: int64(80), defaultVal: 0, expected: 80},
		{name: "float", input: 12.0, defaultVal: 0, expected: 12},
		{name: "string", input: " 60 ", defaultVal: 0, expected: 60},
		{name: "bad string", input: "wide", defaultVal: 3, expected: 3},
		{name: "bool uses default", input: true, defaultVal: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceInt(tt.input, tt.defaultVal))
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	assert.Equal(t, ".wiki", NormalizeExtension("wiki"))
	assert.Equal(t, ".md", NormalizeExtension(" .md "))
	assert.Empty(t, NormalizeExtension(""))
}

func TestNormalizeColorMode(t *testing.T) {
	assert.Equal(t, ColorAlways, NormalizeColorMode("ALWAYS"))
	assert.Equal(t, ColorNever, NormalizeColorMode("off"))
	assert.Equal(t, ColorAuto, NormalizeColorMode("auto"))
	assert.Empty(t, NormalizeColorMode("sometimes"))
}

func TestParseConfig(t *testing.T) {
	cfg := parseConfig(map[string]any{
		"wiki_dir":       " /srv/wiki ",
		"index_file":     "home",
		"extension":      "md",
		"theme":          "Nord",
		"color":          false,
		"show_icons":     "true",
		"max_text_width": 40,
		"debug_log":      "/tmp/wikitodo.log",
	})

	assert.Equal(t, "/srv/wiki", cfg.WikiDir)
	assert.Equal(t, "home", cfg.IndexFile)
	assert.Equal(t, ".md", cfg.Extension)
	assert.Equal(t, theme.NordName, cfg.Theme)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.ShowIcons)
	assert.Equal(t, 40, cfg.MaxTextWidth)
	assert.Equal(t, "/tmp/wikitodo.log", cfg.DebugLog)
}

func TestParseConfigInvalidValuesKeepDefaults(t *testing.T) {
	cfg := parseConfig(map[string]any{
		"wiki_dir":       "",
		"theme":          "no-such-theme",
		"color":          "sometimes",
		"max_text_width": -4,
		"extension":      12,
	})

	defaults := DefaultConfig()
	assert.Equal(t, defaults.WikiDir, cfg.WikiDir)
	assert.Equal(t, defaults.Theme, cfg.Theme)
	assert.Equal(t, defaults.Color, cfg.Color)
	assert.Equal(t, defaults.Extension, cfg.Extension)
	assert.Zero(t, cfg.MaxTextWidth)
}

func TestApplyCLIOverrides(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyCLIOverrides([]string{
		"todo.wiki_dir=/data/wiki",
		"show_icons=yes",
		"max_text_width=30",
		"theme=dracula",
		"color=never",
	})
	require.NoError(t, err)

	assert.Equal(t, "/data/wiki", cfg.WikiDir)
	assert.True(t, cfg.ShowIcons)
	assert.Equal(t, 30, cfg.MaxTextWidth)
	assert.Equal(t, theme.DraculaName, cfg.Theme)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestApplyCLIOverridesErrors(t *testing.T) {
	tests := []struct {
		name     string
		override string
		errText  string
	}{
		{name: "missing equals", override: "wiki_dir", errText: "expected key=value"},
		{name: "unknown key", override: "sort_mode=path", errText: "unknown config key"},
		{name: "unknown theme", override: "theme=neon", errText: "unknown theme"},
		{name: "bad color", override: "color=rainbow", errText: "invalid color mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ApplyCLIOverrides([]string{tt.override})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "wikitodo")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	writeConfigFile(t, "config.yaml", "wiki_dir: /notes\nextension: md\nshow_icons: true\n")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/notes", cfg.WikiDir)
	assert.Equal(t, ".md", cfg.Extension)
	assert.True(t, cfg.ShowIcons)
}

func TestLoadConfigTOML(t *testing.T) {
	writeConfigFile(t, "config.toml", "wiki_dir = \"/notes\"\nmax_text_width = 50\ntheme = \"nord\"\n")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/notes", cfg.WikiDir)
	assert.Equal(t, 50, cfg.MaxTextWidth)
	assert.Equal(t, theme.NordName, cfg.Theme)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := writeConfigFile(t, "work.yml", "index_file: work\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "work", cfg.IndexFile)
}

func TestLoadConfigRejectsPathOutsideConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	outside := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(outside, []byte("wiki_dir: /x\n"), 0o600))

	cfg, err := LoadConfig(outside)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must reside inside")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	writeConfigFile(t, "config.yaml", "wiki_dir: [unterminated\n")

	cfg, err := LoadConfig("")
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

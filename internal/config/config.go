// Package config loads wikitodo configuration from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chmouel/wikitodo/internal/theme"
	"github.com/chmouel/wikitodo/internal/utils"
	"gopkg.in/yaml.v3"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// overridePrefix is accepted (and ignored) in front of -C keys.
const overridePrefix = "todo."

// AppConfig defines the wikitodo configuration options.
type AppConfig struct {
	WikiDir      string // Root of the wiki; every other path resolves against it
	IndexFile    string // Index file name, with or without extension
	Extension    string // Wiki file extension, always starting with a dot
	Theme        string // Theme name: see AvailableThemes in internal/theme
	Color        string // "auto", "always" or "never"
	ShowIcons    bool   // Render a Nerd Font file icon next to each location
	MaxTextWidth int    // Truncate TODO text to this many columns (0 = no limit)
	DebugLog     string
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		WikiDir:      "~/vimwiki",
		IndexFile:    "index",
		Extension:    ".wiki",
		Theme:        theme.DefaultName(),
		Color:        ColorAuto,
		ShowIcons:    false,
		MaxTextWidth: 0,
	}
}

// IndexPath returns the path of the index file inside WikiDir.
func (cfg *AppConfig) IndexPath() string {
	name := cfg.IndexFile
	if !strings.HasSuffix(name, cfg.Extension) {
		name += cfg.Extension
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(cfg.WikiDir, name)
}

// ExpandPaths expands ~ and environment variables and makes WikiDir absolute.
func (cfg *AppConfig) ExpandPaths() error {
	dir, err := utils.ExpandPath(cfg.WikiDir)
	if err != nil {
		return fmt.Errorf("error expanding wiki dir %q: %w", cfg.WikiDir, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("error resolving wiki dir %q: %w", dir, err)
	}
	cfg.WikiDir = abs

	if cfg.DebugLog != "" {
		if expanded, err := utils.ExpandPath(cfg.DebugLog); err == nil {
			cfg.DebugLog = expanded
		}
	}
	return nil
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func coerceString(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// NormalizeExtension makes sure ext starts with a dot. An empty value yields "".
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// NormalizeColorMode returns the canonical colour mode, or "" if unsupported.
func NormalizeColorMode(mode string) string {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode
	case "true", "on", "yes":
		return ColorAlways
	case "false", "off", "no":
		return ColorNever
	}
	return ""
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, available := range theme.AvailableThemes() {
		if name == available {
			return name
		}
	}
	return ""
}

// applyValues overlays decoded key/value pairs onto cfg. Invalid values are ignored.
func applyValues(cfg *AppConfig, data map[string]any) {
	if wikiDir, ok := coerceString(data["wiki_dir"]); ok {
		cfg.WikiDir = wikiDir
	}
	if indexFile, ok := coerceString(data["index_file"]); ok {
		cfg.IndexFile = indexFile
	}
	if ext, ok := coerceString(data["extension"]); ok {
		cfg.Extension = NormalizeExtension(ext)
	}
	if debugLog, ok := coerceString(data["debug_log"]); ok {
		cfg.DebugLog = debugLog
	}
	if themeName, ok := coerceString(data["theme"]); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}
	if raw, ok := data["color"]; ok {
		var mode string
		switch v := raw.(type) {
		case bool:
			mode = ColorNever
			if v {
				mode = ColorAlways
			}
		case string:
			mode = NormalizeColorMode(v)
		}
		if mode != "" {
			cfg.Color = mode
		}
	}

	cfg.ShowIcons = coerceBool(data["show_icons"], cfg.ShowIcons)
	cfg.MaxTextWidth = coerceInt(data["max_text_width"], cfg.MaxTextWidth)
	if cfg.MaxTextWidth < 0 {
		cfg.MaxTextWidth = 0
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	applyValues(cfg, data)
	return cfg
}

var knownKeys = map[string]bool{
	"wiki_dir":       true,
	"index_file":     true,
	"extension":      true,
	"debug_log":      true,
	"theme":          true,
	"color":          true,
	"show_icons":     true,
	"max_text_width": true,
}

// ApplyCLIOverrides applies "key=value" overrides given with -C.
func (cfg *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data := make(map[string]any, len(overrides))
	for _, override := range overrides {
		key, value, ok := strings.Cut(override, "=")
		if !ok {
			return fmt.Errorf("invalid config override %q: expected key=value", override)
		}
		key = strings.TrimPrefix(strings.TrimSpace(key), overridePrefix)
		if !knownKeys[key] {
			return fmt.Errorf("unknown config key %q", key)
		}
		switch key {
		case "theme":
			if NormalizeThemeName(value) == "" {
				return fmt.Errorf("unknown theme %q", value)
			}
		case "color":
			if NormalizeColorMode(value) == "" {
				return fmt.Errorf("invalid color mode %q: expected auto, always or never", value)
			}
		}
		data[key] = value
	}
	applyValues(cfg, data)
	return nil
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigDir returns the directory configuration files must live in.
func ConfigDir() string {
	return filepath.Clean(filepath.Join(getConfigDir(), "wikitodo"))
}

// LoadConfig reads the first existing configuration file, or configPath when set.
// On a decode error the defaults are returned together with the error.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := ConfigDir()

	var paths []string

	if configPath != "" {
		expanded, err := utils.ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !utils.IsPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
			filepath.Join(configBase, "config.toml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		values, err := decode(path, data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return parseConfig(values), nil
	}

	return DefaultConfig(), nil
}

func decode(path string, data []byte) (map[string]any, error) {
	values := map[string]any{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, err
		}
		return values, nil
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

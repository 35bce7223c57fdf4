package bootstrap

import (
	"fmt"
	"io"
	"sort"

	"github.com/chmouel/wikitodo/internal/config"
	"github.com/chmouel/wikitodo/internal/log"
	"github.com/chmouel/wikitodo/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
)

// loadCLIConfig resolves the configuration: file, then -C overrides, then
// dedicated flags. Only invalid overrides and flags are fatal.
func loadCLIConfig(cmd *urfavecli.Command, stderr io.Writer) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		log.Warn("falling back to default config", "error", err)
		cfg = config.DefaultConfig()
	}

	if overrides := cmd.StringSlice("config"); len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	if err := applyFlagOverrides(cfg, cmd); err != nil {
		return nil, err
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlagOverrides(cfg *config.AppConfig, cmd *urfavecli.Command) error {
	if dir := cmd.String("wiki-dir"); dir != "" {
		cfg.WikiDir = dir
	}
	if index := cmd.String("index"); index != "" {
		cfg.IndexFile = index
	}
	if ext := config.NormalizeExtension(cmd.String("extension")); ext != "" {
		cfg.Extension = ext
	}
	if name := cmd.String("theme"); name != "" {
		normalized := config.NormalizeThemeName(name)
		if normalized == "" {
			return fmt.Errorf("unknown theme %q (see --show-themes)", name)
		}
		cfg.Theme = normalized
	}
	if cmd.Bool("no-color") {
		cfg.Color = config.ColorNever
	}
	if debugLog := cmd.String("debug-log"); debugLog != "" {
		cfg.DebugLog = debugLog
	}
	return nil
}

// setupDebugLog points the debug sink at the configured file, or discards
// what was buffered so far when none is set.
func setupDebugLog(cfg *config.AppConfig, stderr io.Writer) {
	if err := log.SetFile(cfg.DebugLog); err != nil {
		fmt.Fprintf(stderr, "Error opening debug log file %q: %v\n", cfg.DebugLog, err)
	}
}

func printThemes(w io.Writer) {
	names := theme.AvailableThemes()
	sort.Strings(names)
	fmt.Fprintln(w, "Available themes:")
	for _, name := range names {
		marker := " "
		if name == theme.DefaultName() {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %s\n", marker, name)
	}
}

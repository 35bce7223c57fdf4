package wiki

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chmouel/wikitodo/internal/config"
	"github.com/stretchr/testify/require"
)

// newTestWiki writes files (relative path -> content) into a temp wiki root and
// returns a service for it.
func newTestWiki(t *testing.T, files map[string]string) *Service {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	cfg := config.DefaultConfig()
	cfg.WikiDir = root
	return NewService(cfg)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	// #nosec G304 -- test files live in t.TempDir()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chmouel/wikitodo/internal/config"
	"github.com/chmouel/wikitodo/internal/theme"
	"github.com/chmouel/wikitodo/internal/wiki"
	"github.com/stretchr/testify/require"
)

type testWiki struct {
	root string
	svc  *wiki.Service
}

func newTestWiki(t *testing.T, files map[string]string) *testWiki {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	cfg := config.DefaultConfig()
	cfg.WikiDir = root
	return &testWiki{root: root, svc: wiki.NewService(cfg)}
}

func (w *testWiki) path(name string) string {
	return filepath.Join(w.root, filepath.FromSlash(name))
}

func (w *testWiki) read(t *testing.T, name string) string {
	t.Helper()
	// #nosec G304 -- test files live in t.TempDir()
	data, err := os.ReadFile(w.path(name))
	require.NoError(t, err)
	return string(data)
}

func (w *testWiki) load(t *testing.T) *wiki.Snapshot {
	t.Helper()
	snap, err := w.svc.Load()
	require.NoError(t, err)
	return snap
}

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	p := NewPrinter(out, errOut, theme.GruvboxDark(), PrinterOptions{Color: config.ColorNever})
	return p, out, errOut
}

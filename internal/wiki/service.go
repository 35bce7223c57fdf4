// Package wiki loads an index file and the files it links to, and rewrites
// checkbox lines in them.
package wiki

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chmouel/wikitodo/internal/config"
	"github.com/chmouel/wikitodo/internal/log"
	"github.com/chmouel/wikitodo/internal/utils"
)

// Service resolves wiki paths for one configured wiki directory.
type Service struct {
	root  string
	index string
	ext   string
}

// NewService creates a service for cfg. cfg.WikiDir is expected to be expanded.
func NewService(cfg *config.AppConfig) *Service {
	root := filepath.Clean(cfg.WikiDir)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	svc := &Service{root: root, ext: cfg.Extension}
	indexCfg := *cfg
	indexCfg.WikiDir = root
	svc.index = indexCfg.IndexPath()
	return svc
}

// Root returns the wiki root directory.
func (s *Service) Root() string { return s.root }

// IndexPath returns the path of the index file.
func (s *Service) IndexPath() string { return s.index }

func (s *Service) linkedFrom(data []byte) ([]string, error) {
	links, err := ParseLinks(bytes.NewReader(data), s.ext)
	if err != nil {
		return nil, fmt.Errorf("failed to parse links in %s: %w", s.index, err)
	}
	paths := make([]string, 0, len(links))
	for _, link := range links {
		paths = append(paths, resolveLink(s.root, link))
	}
	return paths, nil
}

// Load reads the index file and every linked file and scans them for TODOs.
// Any unreadable file aborts the whole load.
func (s *Service) Load() (*Snapshot, error) {
	snap := newSnapshot(s.root)

	// #nosec G304 -- the index path comes from the user's configuration
	data, err := os.ReadFile(s.index)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	snap.add(NewBuffer(s.index, data))

	linked, err := s.linkedFrom(data)
	if err != nil {
		return nil, err
	}

	for _, path := range linked {
		if buf, ok := snap.buffers[path]; ok {
			snap.Items = append(snap.Items, ScanBuffer(buf)...)
			continue
		}
		// #nosec G304 -- linked paths are resolved from the user's own index file
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read linked file %s: %w", s.Rel(path), err)
		}
		snap.add(NewBuffer(path, data))
	}

	log.Debug("loaded wiki", "root", s.root, "files", len(snap.order), "items", len(snap.Items))
	return snap, nil
}

// AppendToFile appends text to a file that is not part of a snapshot.
func (s *Service) AppendToFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.Rel(path), err)
	}
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to %s: %w", s.Rel(path), err)
	}
	return f.Close()
}

// Rel returns path relative to the wiki root when it lives inside it.
func (s *Service) Rel(path string) string {
	return relPath(s.root, path)
}

func writeFile(path string, data []byte) error {
	perm := fs.FileMode(utils.DefaultFilePerms)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}

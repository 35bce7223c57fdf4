package wiki

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/chmouel/wikitodo/internal/log"
)

// FindFiles walks the wiki root for files with the wiki extension whose base
// name contains substring. Hidden and unreadable directories are skipped.
// Results are sorted by path.
func (s *Service) FindFiles(substring string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		return s.visit(path, d, err, substring, &matches)
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *Service) visit(path string, d fs.DirEntry, err error, substring string, matches *[]string) error {
	if err != nil {
		if d != nil && d.IsDir() && path != s.root {
			log.Warn("skipping unreadable directory", "dir", s.Rel(path), "error", err)
			return filepath.SkipDir
		}
		return err
	}
	name := d.Name()
	if d.IsDir() {
		if path != s.root && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return nil
	}
	if !d.Type().IsRegular() {
		return nil
	}
	if strings.HasSuffix(name, s.ext) && strings.Contains(name, substring) {
		*matches = append(*matches, path)
	}
	return nil
}

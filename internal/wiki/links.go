package wiki

import (
	"bufio"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

var linkPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// ParseLinks returns the link targets of every [[name]] token in r, in order.
// A "|description" part is dropped and the extension is appended when missing.
func ParseLinks(r io.Reader, ext string) ([]string, error) {
	var links []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, m := range linkPattern.FindAllStringSubmatch(scanner.Text(), -1) {
			target := m[1]
			if i := strings.Index(target, "|"); i >= 0 {
				target = target[:i]
			}
			target = strings.TrimSpace(target)
			if target == "" {
				continue
			}
			if !strings.HasSuffix(target, ext) {
				target += ext
			}
			links = append(links, target)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return links, nil
}

// resolveLink joins a link target onto the wiki root.
func resolveLink(root, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(root, filepath.FromSlash(target))
}

package wiki

import (
	"regexp"

	"github.com/chmouel/wikitodo/internal/models"
)

// checkboxPattern matches "<ws>- [ ] text" and "<ws>- [x] text".
// Group 1 is the status token, group 2 the text.
var checkboxPattern = regexp.MustCompile(`^\s*-\s\[( |x)\]\s(.+)$`)

// ParseCheckbox extracts status and text from a single line.
func ParseCheckbox(line string) (models.Status, string, bool) {
	m := checkboxPattern.FindStringSubmatch(trimEOL(line))
	if m == nil {
		return 0, "", false
	}
	status, ok := models.ParseStatus(m[1])
	if !ok {
		return 0, "", false
	}
	return status, m[2], true
}

// ScanBuffer returns the checkbox items of a buffer in line order.
func ScanBuffer(b *Buffer) []models.TodoItem {
	var items []models.TodoItem
	for offset := 0; offset < b.Len(); offset++ {
		raw, ok := b.Line(offset)
		if !ok {
			continue
		}
		status, text, ok := ParseCheckbox(raw)
		if !ok {
			continue
		}
		items = append(items, models.TodoItem{
			File:   b.Path,
			Offset: offset,
			Status: status,
			Text:   text,
		})
	}
	return items
}

package wiki

import (
	"fmt"
	"strings"

	"github.com/chmouel/wikitodo/internal/models"
)

type bufferLine struct {
	raw     string // Line content including its terminator, if any
	removed bool
}

// Buffer holds the raw lines of one file for the duration of a run.
// Lines keep their original offsets even after removals so that items
// scanned at load time stay addressable until the run ends.
type Buffer struct {
	Path  string
	lines []bufferLine
	dirty bool
}

// NewBuffer splits data into lines, preserving every terminator byte.
func NewBuffer(path string, data []byte) *Buffer {
	b := &Buffer{Path: path}
	for _, raw := range strings.SplitAfter(string(data), "\n") {
		if raw == "" {
			continue
		}
		b.lines = append(b.lines, bufferLine{raw: raw})
	}
	return b
}

// Len returns the number of lines loaded or appended, removed ones included.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns the raw line at offset and whether it is still present.
func (b *Buffer) Line(offset int) (string, bool) {
	if offset < 0 || offset >= len(b.lines) || b.lines[offset].removed {
		return "", false
	}
	return b.lines[offset].raw, true
}

// Toggle flips the checkbox on the line at offset and returns the new status.
func (b *Buffer) Toggle(offset int) (models.Status, error) {
	raw, ok := b.Line(offset)
	if !ok {
		return 0, b.missing(offset)
	}
	loc := checkboxPattern.FindStringSubmatchIndex(trimEOL(raw))
	if loc == nil {
		return 0, fmt.Errorf("%s:%d is not a checkbox line", b.Path, offset+1)
	}
	// loc[2]:loc[3] is the status token.
	current, _ := models.ParseStatus(raw[loc[2]:loc[3]])
	next := current.Toggled()
	b.lines[offset].raw = raw[:loc[2]] + string(rune(next)) + raw[loc[3]:]
	b.dirty = true
	return next, nil
}

// Remove drops the line at offset. Later offsets are unaffected.
func (b *Buffer) Remove(offset int) error {
	if _, ok := b.Line(offset); !ok {
		return b.missing(offset)
	}
	b.lines[offset].removed = true
	b.dirty = true
	return nil
}

// Append adds raw text at the end of the file, exactly as an O_APPEND write would.
func (b *Buffer) Append(text string) {
	if text == "" {
		return
	}
	pieces := strings.SplitAfter(text, "\n")
	if last := b.lastPresent(); last >= 0 && !strings.HasSuffix(b.lines[last].raw, "\n") {
		b.lines[last].raw += pieces[0]
		pieces = pieces[1:]
	}
	for _, raw := range pieces {
		if raw == "" {
			continue
		}
		b.lines = append(b.lines, bufferLine{raw: raw})
	}
	b.dirty = true
}

// Dirty reports whether the buffer has changes that are not on disk yet.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Bytes renders the current content with removed lines left out.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for _, l := range b.lines {
		if l.removed {
			continue
		}
		sb.WriteString(l.raw)
	}
	return []byte(sb.String())
}

func (b *Buffer) markClean() {
	b.dirty = false
}

func (b *Buffer) lastPresent() int {
	for i := len(b.lines) - 1; i >= 0; i-- {
		if !b.lines[i].removed {
			return i
		}
	}
	return -1
}

func (b *Buffer) missing(offset int) error {
	if offset >= 0 && offset < len(b.lines) && b.lines[offset].removed {
		return fmt.Errorf("%s:%d: %w", b.Path, offset+1, models.ErrAlreadyDeleted)
	}
	return fmt.Errorf("%s:%d: line out of range", b.Path, offset+1)
}

func trimEOL(raw string) string {
	raw = strings.TrimSuffix(raw, "\n")
	return strings.TrimSuffix(raw, "\r")
}

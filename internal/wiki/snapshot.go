package wiki

import (
	"fmt"
	"path/filepath"

	"github.com/chmouel/wikitodo/internal/log"
	"github.com/chmouel/wikitodo/internal/models"
	"github.com/chmouel/wikitodo/internal/utils"
)

// Snapshot is the state loaded at the start of a run: the numbered items and
// one line buffer per file. Display numbers index Items and never change
// during the run.
type Snapshot struct {
	Root    string
	Items   []models.TodoItem
	buffers map[string]*Buffer
	order   []string
}

func newSnapshot(root string) *Snapshot {
	return &Snapshot{
		Root:    root,
		buffers: make(map[string]*Buffer),
	}
}

func (s *Snapshot) add(buf *Buffer) {
	s.buffers[buf.Path] = buf
	s.order = append(s.order, buf.Path)
	s.Items = append(s.Items, ScanBuffer(buf)...)
}

// Len returns the number of items.
func (s *Snapshot) Len() int {
	return len(s.Items)
}

// Empty reports whether no TODOs were found.
func (s *Snapshot) Empty() bool {
	return len(s.Items) == 0
}

// Item returns the item for a 1-based display number.
func (s *Snapshot) Item(number int) (models.TodoItem, error) {
	if number < 1 || number > len(s.Items) {
		return models.TodoItem{}, fmt.Errorf("%w: %d", models.ErrInvalidNumber, number)
	}
	return s.Items[number-1], nil
}

// Toggle flips the checkbox of item in memory and returns the new status.
func (s *Snapshot) Toggle(item models.TodoItem) (models.Status, error) {
	buf, err := s.buffer(item)
	if err != nil {
		return 0, err
	}
	return buf.Toggle(item.Offset)
}

// Remove deletes the line of item in memory.
func (s *Snapshot) Remove(item models.TodoItem) error {
	buf, err := s.buffer(item)
	if err != nil {
		return err
	}
	return buf.Remove(item.Offset)
}

// Append adds raw text to the end of a loaded file in memory.
// It returns false when path is not part of the snapshot.
func (s *Snapshot) Append(path, text string) bool {
	buf, ok := s.buffers[filepath.Clean(path)]
	if !ok {
		return false
	}
	buf.Append(text)
	return true
}

// Flush writes every changed buffer to disk, once per file, and returns the
// paths written.
func (s *Snapshot) Flush() ([]string, error) {
	var written []string
	for _, path := range s.order {
		buf := s.buffers[path]
		if !buf.Dirty() {
			continue
		}
		data := buf.Bytes()
		if err := writeFile(path, data); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", s.Rel(path), err)
		}
		buf.markClean()
		written = append(written, path)
		log.Debug("rewrote file", "file", s.Rel(path), "bytes", len(data))
	}
	return written, nil
}

// Rel returns path relative to the wiki root when it lives inside it.
func (s *Snapshot) Rel(path string) string {
	return relPath(s.Root, path)
}

func (s *Snapshot) buffer(item models.TodoItem) (*Buffer, error) {
	buf, ok := s.buffers[item.File]
	if !ok {
		return nil, fmt.Errorf("%s is not loaded", s.Rel(item.File))
	}
	return buf, nil
}

func relPath(root, path string) string {
	return filepath.ToSlash(utils.RelOrAbs(root, path))
}

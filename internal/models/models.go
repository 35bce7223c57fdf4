// Package models defines the data objects shared across wikitodo packages.
package models

import "fmt"

// TodoItem is a checkbox line found in a wiki file.
// Identity is the (File, Offset) pair; items only live for one invocation.
type TodoItem struct {
	File   string // Absolute, cleaned path of the owning file
	Offset int    // 0-based line offset inside File at scan time
	Status Status // Status at scan time
	Text   string // Free text after the checkbox
}

// Line returns the 1-based line number for display.
func (t TodoItem) Line() int {
	return t.Offset + 1
}

// Done reports whether the item was completed at scan time.
func (t TodoItem) Done() bool {
	return t.Status == StatusDone
}

// Glyph returns the checkbox as it appears in a wiki file.
func (t TodoItem) Glyph() string {
	return t.Status.Glyph()
}

// Key identifies the item across lists built from the same snapshot.
func (t TodoItem) Key() string {
	return fmt.Sprintf("%s:%d", t.File, t.Offset)
}

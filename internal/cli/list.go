package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chmouel/wikitodo/internal/models"
	"github.com/chmouel/wikitodo/internal/wiki"
	devicons "github.com/epilande/go-devicons"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// todoJSON is the JSON output format of a TODO.
type todoJSON struct {
	Number int    `json:"number"`
	File   string `json:"file"`
	Line   int    `json:"line"`
	Status string `json:"status"`
	Text   string `json:"text"`
}

// ListTodos prints every item of snap as a numbered list, or as JSON.
func ListTodos(p *Printer, snap *wiki.Snapshot, jsonOutput bool) error {
	if jsonOutput {
		return outputListJSON(p, snap)
	}

	fmt.Fprintln(p.Out, p.out.heading.Render("Your TODOs:"))
	for i, item := range snap.Items {
		fmt.Fprintln(p.Out, p.formatEntry(i+1, item, snap.Rel(item.File)))
	}
	return nil
}

func (p *Printer) formatEntry(number int, item models.TodoItem, rel string) string {
	glyph := p.out.open.Render(item.Glyph())
	if item.Done() {
		glyph = p.out.done.Render(item.Glyph())
	}

	text := item.Text
	if p.opts.MaxTextWidth > 0 {
		text = truncate.StringWithTail(text, uint(p.opts.MaxTextWidth), ellipsis) //nolint:gosec // width is clamped to >= 0 by config
	}

	location := fmt.Sprintf("%s:%d", rel, item.Line())
	if p.opts.ShowIcons {
		location = iconWithSpace(deviconForName(filepath.Base(rel))) + location
	}

	var sb strings.Builder
	sb.WriteString(p.out.entry.Render(fmt.Sprintf("%d.", number)))
	sb.WriteString(" ")
	sb.WriteString(glyph)
	sb.WriteString(" ")
	sb.WriteString(p.out.entry.Render(text))
	sb.WriteString(" (")
	sb.WriteString(p.out.location.Render(location))
	sb.WriteString(")")
	return sb.String()
}

func outputListJSON(p *Printer, snap *wiki.Snapshot) error {
	output := make([]todoJSON, 0, snap.Len())
	for i, item := range snap.Items {
		output = append(output, todoJSON{
			Number: i + 1,
			File:   snap.Rel(item.File),
			Line:   item.Line(),
			Status: item.Status.String(),
			Text:   item.Text,
		})
	}

	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

type iconFileInfo struct {
	name string
}

func (i iconFileInfo) Name() string       { return i.name }
func (i iconFileInfo) Size() int64        { return 0 }
func (i iconFileInfo) Mode() os.FileMode  { return 0 }
func (i iconFileInfo) ModTime() time.Time { return time.Time{} }
func (i iconFileInfo) IsDir() bool        { return false }
func (i iconFileInfo) Sys() any           { return nil }

func deviconForName(name string) string {
	if name == "" {
		return ""
	}
	return devicons.IconForInfo(iconFileInfo{name: name}).Icon
}

func iconWithSpace(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}

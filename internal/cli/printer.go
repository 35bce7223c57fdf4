package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/wikitodo/internal/config"
	"github.com/chmouel/wikitodo/internal/theme"
	"github.com/muesli/termenv"
)

// PrinterOptions controls how TODOs are rendered.
type PrinterOptions struct {
	Color        string // config.ColorAuto, ColorAlways or ColorNever
	ShowIcons    bool
	MaxTextWidth int
}

type styles struct {
	heading  lipgloss.Style
	entry    lipgloss.Style
	open     lipgloss.Style
	done     lipgloss.Style
	location lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	muted    lipgloss.Style
}

// Printer writes listings and operation reports. Reports about successful
// changes go to Out, reports about rejected input go to Err.
type Printer struct {
	Out  io.Writer
	Err  io.Writer
	Thm  *theme.Theme
	opts PrinterOptions

	out styles
	err styles
}

// NewPrinter builds a printer whose colours follow thm and opts.Color.
func NewPrinter(out, errOut io.Writer, thm *theme.Theme, opts PrinterOptions) *Printer {
	if thm == nil {
		thm = theme.GetTheme(theme.DefaultName())
	}
	return &Printer{
		Out:  out,
		Err:  errOut,
		Thm:  thm,
		opts: opts,
		out:  newStyles(newRenderer(out, opts.Color), thm),
		err:  newStyles(newRenderer(errOut, opts.Color), thm),
	}
}

func newRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

func newStyles(r *lipgloss.Renderer, thm *theme.Theme) styles {
	return styles{
		heading:  r.NewStyle().Foreground(thm.Heading).Bold(true),
		entry:    r.NewStyle().Foreground(thm.Entry),
		open:     r.NewStyle().Foreground(thm.Open),
		done:     r.NewStyle().Foreground(thm.Done),
		location: r.NewStyle().Foreground(thm.Location),
		success:  r.NewStyle().Foreground(thm.Success),
		failure:  r.NewStyle().Foreground(thm.Error),
		muted:    r.NewStyle().Foreground(thm.Muted),
	}
}

// Info prints a muted informational line on Out.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.Out, p.out.muted.Render(fmt.Sprintf(format, args...)))
}

// Success prints a line in the success colour on Out.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.Out, p.out.success.Render(fmt.Sprintf(format, args...)))
}

// Deleted prints a deletion report on Out.
func (p *Printer) Deleted(format string, args ...any) {
	fmt.Fprintln(p.Out, p.out.failure.Render(fmt.Sprintf(format, args...)))
}

// Failure prints a rejected-input report on Err.
func (p *Printer) Failure(format string, args ...any) {
	fmt.Fprintln(p.Err, p.err.failure.Render(fmt.Sprintf(format, args...)))
}

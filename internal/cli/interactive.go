package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chmouel/wikitodo/internal/models"
	"github.com/chmouel/wikitodo/internal/picker"
	"github.com/chmouel/wikitodo/internal/theme"
	"golang.org/x/term"
)

// TargetSelector chooses the file a new TODO goes to when several match.
type TargetSelector func(candidates []string) (string, error)

// isTerminal is a package-level variable, replaceable in tests.
var isTerminal = term.IsTerminal

// runPicker is a package-level variable, replaceable in tests.
var runPicker = picker.Run

// DefaultSelector uses the interactive picker when both stdin and stderr are
// terminals and falls back to a numbered prompt otherwise.
func DefaultSelector(stdin io.Reader, stderr io.Writer, thm *theme.Theme, label func(string) string) TargetSelector {
	if isTTY(stdin) && isTTY(stderr) {
		return PickerSelector(stdin, stderr, thm, label)
	}
	return PromptSelector(stdin, stderr, label)
}

func isTTY(v any) bool {
	f, ok := v.(*os.File)
	return ok && isTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// FixedSelector always picks the 1-based choice among the candidates.
func FixedSelector(choice int) TargetSelector {
	return func(candidates []string) (string, error) {
		if choice < 1 || choice > len(candidates) {
			return "", fmt.Errorf("%w: %d out of range (must be 1-%d)", models.ErrInvalidSelection, choice, len(candidates))
		}
		return candidates[choice-1], nil
	}
}

// PromptSelector prints the candidates as a numbered list on stderr and reads
// the 1-based choice from stdin.
func PromptSelector(stdin io.Reader, stderr io.Writer, label func(string) string) TargetSelector {
	return func(candidates []string) (string, error) {
		return selectWithPrompt(candidates, stdin, stderr, label)
	}
}

// PickerSelector shows the candidates in a filterable full-screen list.
func PickerSelector(stdin io.Reader, stderr io.Writer, thm *theme.Theme, label func(string) string) TargetSelector {
	return func(candidates []string) (string, error) {
		items := make([]picker.Item, 0, len(candidates))
		for _, c := range candidates {
			items = append(items, picker.Item{ID: c, Label: labelFor(label, c)})
		}
		chosen, err := runPicker("Multiple files found", items, thm, stdin, stderr)
		if err != nil {
			return "", fmt.Errorf("%w: %w", models.ErrInvalidSelection, err)
		}
		return chosen.ID, nil
	}
}

func selectWithPrompt(candidates []string, stdin io.Reader, stderr io.Writer, label func(string) string) (string, error) {
	fmt.Fprintf(stderr, "Multiple files found:\n\n")
	for i, c := range candidates {
		fmt.Fprintf(stderr, "  [%d] %s\n", i+1, labelFor(label, c))
	}
	fmt.Fprintf(stderr, "\nEnter the number of the file you want to add the TODO to [1-%d]: ", len(candidates))

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return "", fmt.Errorf("%w: selection cancelled", models.ErrInvalidSelection)
	}

	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return "", fmt.Errorf("%w: no file selected", models.ErrInvalidSelection)
	}

	idx, err := strconv.Atoi(text)
	if err != nil {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidSelection, text)
	}

	if idx < 1 || idx > len(candidates) {
		return "", fmt.Errorf("%w: %d out of range (must be 1-%d)", models.ErrInvalidSelection, idx, len(candidates))
	}

	return candidates[idx-1], nil
}

func labelFor(label func(string) string, path string) string {
	if label == nil {
		return path
	}
	return label(path)
}

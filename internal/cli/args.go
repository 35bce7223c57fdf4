package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chmouel/wikitodo/internal/models"
)

// ParseNumbers parses a comma-separated list of TODO numbers such as "1,3".
// Order and duplicates are preserved.
func ParseNumbers(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", models.ErrMalformedToggle, value)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// ParseAddArg splits "substring:text" at the first colon. The text keeps any
// further colons verbatim.
func ParseAddArg(value string) (substring, text string, err error) {
	substring, text, ok := strings.Cut(value, ":")
	if !ok || strings.TrimSpace(text) == "" {
		return "", "", fmt.Errorf("%w: %q", models.ErrMalformedAdd, value)
	}
	return substring, text, nil
}

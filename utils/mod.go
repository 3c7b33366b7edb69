package utils

import (
	"fmt"
	"strings"
)

// ParseLines converts every non-empty line of input with parse.
func ParseLines[T any](input string, parse func(line string) (T, error)) ([]T, error) {
	var items []T
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		item, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

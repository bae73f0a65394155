// Package format renders dialog results for the console.
package format

import (
	"fmt"
	"strings"
)

// Choices renders a multi-choice result for the console: choice: ["a", "b"].
func Choices(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return fmt.Sprintf("choice: [%s]", strings.Join(quoted, ", "))
}

// Choice renders a single-choice result. An empty label means nothing was chosen.
func Choice(label string) string {
	if label == "" {
		return "choice: none"
	}
	return fmt.Sprintf("choice: %q", label)
}

// List joins labels for a status line, or "(nothing)" when empty.
func List(labels []string) string {
	if len(labels) == 0 {
		return "(nothing)"
	}
	return strings.Join(labels, ", ")
}

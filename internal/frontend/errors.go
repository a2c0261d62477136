package frontend

import (
	"fmt"
	"strings"
)

// Error reports that the host toolchain failed to load or type-check the
// input. Errors holds one line per host diagnostic in the order the host
// produced them.
type Error struct {
	Path   string
	Errors []string
}

func (e *Error) Error() string {
	switch len(e.Errors) {
	case 0:
		return fmt.Sprintf("frontend: %s: load failed", e.Path)
	case 1:
		return fmt.Sprintf("frontend: %s: %s", e.Path, e.Errors[0])
	default:
		return fmt.Sprintf("frontend: %s: %d errors:\n\t%s", e.Path, len(e.Errors), strings.Join(e.Errors, "\n\t"))
	}
}

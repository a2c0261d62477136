// Package render formats diagnostics and rule documentation for people and
// for machines.
package render

import (
	"fmt"
	"strings"
)

// Mode selects an output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
	ModeTable    Mode = "table"
)

// Modes lists every accepted mode, in help-text order.
func Modes() []Mode {
	return []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML, ModeTable}
}

// ModeNames returns Modes as strings, for flag completion.
func ModeNames() []string {
	modes := Modes()
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = string(m)
	}
	return out
}

// ParseMode parses a mode name. The empty string means ModeAuto and "md"
// is accepted for markdown.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "text":
		return ModeText, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "json":
		return ModeJSON, nil
	case "yaml", "yml":
		return ModeYAML, nil
	case "table":
		return ModeTable, nil
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(ModeNames(), ", "))
}

package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/lintpass/pkg/core"
	"github.com/leapstack-labs/lintpass/pkg/lint"
)

// LocationJSON is the machine-readable form of a span.
type LocationJSON struct {
	File      string `json:"file" yaml:"file"`
	StartLine int    `json:"start_line" yaml:"start_line"`
	StartCol  int    `json:"start_col" yaml:"start_col"`
	EndLine   int    `json:"end_line" yaml:"end_line"`
	EndCol    int    `json:"end_col" yaml:"end_col"`
	StartByte int    `json:"start_byte" yaml:"start_byte"`
	EndByte   int    `json:"end_byte" yaml:"end_byte"`
	Expanded  bool   `json:"expanded,omitempty" yaml:"expanded,omitempty"`
}

// DiagnosticJSON is the machine-readable form of a diagnostic.
type DiagnosticJSON struct {
	Seq      int          `json:"seq" yaml:"seq"`
	Rule     string       `json:"rule" yaml:"rule"`
	Severity string       `json:"severity" yaml:"severity"`
	Message  string       `json:"message" yaml:"message"`
	Location LocationJSON `json:"location" yaml:"location"`
}

// Summary counts diagnostics by severity.
type Summary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Total    int `json:"total" yaml:"total"`
}

// DiagnosticsOutput is the root document of json and yaml output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics" yaml:"diagnostics"`
	Summary     Summary          `json:"summary" yaml:"summary"`
}

// NewDiagnosticsOutput converts diagnostics to their serialisable form,
// keeping emission order.
func NewDiagnosticsOutput(diags []lint.Diagnostic) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(diags))}
	for _, d := range diags {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Seq:      d.Seq,
			Rule:     d.RuleID,
			Severity: d.Severity.String(),
			Message:  d.Message,
			Location: LocationJSON{
				File:      d.Span.File,
				StartLine: d.Span.Start.Line,
				StartCol:  d.Span.Start.Column,
				EndLine:   d.Span.End.Line,
				EndCol:    d.Span.End.Column,
				StartByte: d.Span.Start.Offset,
				EndByte:   d.Span.End.Offset,
				Expanded:  d.Span.Expanded,
			},
		})
	}
	out.Summary = summarize(diags)
	return out
}

func summarize(diags []lint.Diagnostic) Summary {
	var s Summary
	for _, d := range diags {
		switch d.Severity {
		case core.SeverityError:
			s.Errors++
		case core.SeverityWarning:
			s.Warnings++
		}
	}
	s.Total = len(diags)
	return s
}

// Render writes diagnostics in the effective mode. It implements
// lint.Renderer.
func (r *Renderer) Render(diags []lint.Diagnostic) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.diagnosticsJSON(diags)
	case ModeYAML:
		return r.diagnosticsYAML(diags)
	case ModeTable:
		return r.diagnosticsTable(diags)
	case ModeMarkdown:
		return r.diagnosticsMarkdown(diags)
	default:
		return r.diagnosticsText(diags)
	}
}

var _ lint.Renderer = (*Renderer)(nil)

// diagnosticsText prints one line per diagnostic:
//
//	<path>:<line>:<col>: <severity> <RULE>: <message>
func (r *Renderer) diagnosticsText(diags []lint.Diagnostic) error {
	styles := r.Styles()
	for _, d := range diags {
		r.Printf("%s: %s %s: %s\n",
			styles.Path.Render(d.Span.String()),
			styles.Severity(d.Severity).Render(d.Severity.String()),
			styles.Bold.Render(d.RuleID),
			d.Message,
		)
	}
	r.Println(styles.Muted.Render(summaryLine(summarize(diags))))
	return nil
}

func (r *Renderer) diagnosticsMarkdown(diags []lint.Diagnostic) error {
	r.Println("# Lint Results")
	r.Println("")
	if len(diags) == 0 {
		r.Println("No issues found.")
		return nil
	}
	r.Println("| # | Location | Severity | Rule | Message |")
	r.Println("|---|----------|----------|------|---------|")
	for _, d := range diags {
		r.Printf("| %d | `%s` | %s | `%s` | %s |\n",
			d.Seq, d.Span.String(), d.Severity.String(), d.RuleID, escapeMarkdownCell(d.Message))
	}
	r.Println("")
	r.Println(summaryLine(summarize(diags)))
	return nil
}

func (r *Renderer) diagnosticsJSON(diags []lint.Diagnostic) error {
	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(NewDiagnosticsOutput(diags))
}

func (r *Renderer) diagnosticsYAML(diags []lint.Diagnostic) error {
	enc := yaml.NewEncoder(r.Writer())
	enc.SetIndent(2)
	if err := enc.Encode(NewDiagnosticsOutput(diags)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func (r *Renderer) diagnosticsTable(diags []lint.Diagnostic) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Location", "Severity", "Rule", "Message"})
	for _, d := range diags {
		t.AppendRow(table.Row{d.Seq, d.Span.String(), d.Severity.String(), d.RuleID, d.Message})
	}
	t.Render()
	r.Println(summaryLine(summarize(diags)))
	return nil
}

func summaryLine(s Summary) string {
	if s.Total == 0 {
		return "No issues found."
	}
	return fmt.Sprintf("%d %s, %d %s",
		s.Errors, plural(s.Errors, "error"), s.Warnings, plural(s.Warnings, "warning"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

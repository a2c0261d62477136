// Package goanalysis exposes a lint registry as a go/analysis Analyzer so
// the rules can run under go vet -vettool, singlechecker or any other
// analysis driver.
package goanalysis

import (
	"fmt"
	gotoken "go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/leapstack-labs/lintpass/internal/frontend"
	"github.com/leapstack-labs/lintpass/pkg/lint"
)

// Name is the analyzer name.
const Name = "lintpass"

// NewAnalyzer returns an analyzer that lowers each package and runs the
// active rules of reg over it. Diagnostics keep engine order within a file
// and are categorised by rule ID.
func NewAnalyzer(reg *lint.Registry) *analysis.Analyzer {
	eng := lint.NewEngine(lint.Config{Rules: reg})
	return &analysis.Analyzer{
		Name: Name,
		Doc:  "runs the lintpass rules over Go packages",
		Run: func(pass *analysis.Pass) (any, error) {
			return nil, run(pass, eng)
		},
	}
}

func run(pass *analysis.Pass, eng *lint.Engine) error {
	for _, f := range pass.Files {
		tf := pass.Fset.File(f.Pos())
		if tf == nil {
			continue
		}
		root := frontend.LowerFile(pass.Fset, f, pass.Pkg, pass.TypesInfo)

		sink := lint.NewSink()
		eng.RunInto(sink, root)
		for _, d := range sink.Diagnostics() {
			pos, end, err := positions(tf, d)
			if err != nil {
				return err
			}
			pass.Report(analysis.Diagnostic{
				Pos:      pos,
				End:      end,
				Category: d.RuleID,
				Message:  fmt.Sprintf("%s: %s", d.RuleID, d.Message),
			})
		}
	}
	return nil
}

// positions maps a diagnostic span back into the file set. Span offsets are
// raw byte offsets, unaffected by //line directives.
func positions(tf *gotoken.File, d lint.Diagnostic) (gotoken.Pos, gotoken.Pos, error) {
	start, end := d.Span.Start.Offset, d.Span.End.Offset
	if start < 0 || end > tf.Size() || start > end {
		return gotoken.NoPos, gotoken.NoPos, fmt.Errorf("%s: diagnostic %s has span %s outside file", tf.Name(), d.RuleID, d.Span)
	}
	return tf.Pos(start), tf.Pos(end), nil
}

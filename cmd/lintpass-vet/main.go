// Command lintpass-vet runs the built-in lintpass rules as a go/analysis
// checker.
//
// Usage:
//
//	lintpass-vet ./...
//
// or through go vet:
//
//	go vet -vettool=$(which lintpass-vet) ./...
package main

import (
	"fmt"
	"os"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/leapstack-labs/lintpass/internal/cli"
	"github.com/leapstack-labs/lintpass/pkg/lint"
	"github.com/leapstack-labs/lintpass/pkg/lint/goanalysis"
	"github.com/leapstack-labs/lintpass/pkg/lint/rules"
)

func main() {
	a, err := newAnalyzer()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}
	singlechecker.Main(a)
}

// newAnalyzer builds the analyzer over the built-in rules followed by extra.
func newAnalyzer(extra ...lint.Rule) (*analysis.Analyzer, error) {
	reg, err := rules.NewRegistry(extra...)
	if err != nil {
		return nil, err
	}
	return goanalysis.NewAnalyzer(reg), nil
}

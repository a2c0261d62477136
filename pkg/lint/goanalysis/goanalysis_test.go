package goanalysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/leapstack-labs/lintpass/pkg/lint/goanalysis"
	"github.com/leapstack-labs/lintpass/pkg/lint/rules"
)

func TestAnalyzer(t *testing.T) {
	reg, err := rules.NewRegistry()
	require.NoError(t, err)

	a := goanalysis.NewAnalyzer(reg)
	require.NoError(t, analysis.Validate([]*analysis.Analyzer{a}))
	assert.Equal(t, goanalysis.Name, a.Name)

	results := analysistest.Run(t, analysistest.TestData(), a, "demo")
	require.Len(t, results, 1)

	var categories []string
	for _, d := range results[0].Diagnostics {
		categories = append(categories, d.Category)
	}
	assert.Equal(t, []string{"AR01", "CL01", "AR01"}, categories)
}

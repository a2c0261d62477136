package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "3:7", Position{Line: 3, Column: 7}.String())
	assert.Equal(t, "-", Position{}.String())
}

func TestSpan(t *testing.T) {
	span := Span{
		File:  "main.go",
		Start: Position{Line: 1, Column: 9, Offset: 8},
		End:   Position{Line: 1, Column: 14, Offset: 13},
	}

	assert.True(t, span.IsValid())
	assert.True(t, span.Contains(8))
	assert.True(t, span.Contains(12))
	assert.False(t, span.Contains(13))
	assert.Equal(t, "main.go:1:9", span.String())
	assert.False(t, span.Expanded, "spans are direct-source unless the frontend marks them")

	assert.False(t, Span{}.IsValid())
	assert.Equal(t, "-", Span{}.String())
}

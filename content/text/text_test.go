package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_ReturnsContentUnchanged(t *testing.T) {
	t.Parallel()

	markdown := `# Library

## The Prestige

Director: Christopher Nolan

Year: 2006
`

	doc, err := NewParser().Parse([]byte(markdown))
	require.NoError(t, err)

	got, ok := doc.AsString()
	require.True(t, ok)
	assert.Equal(t, markdown, got)
}

func TestParser_Parse_Empty(t *testing.T) {
	t.Parallel()

	doc, err := NewParser().Parse(nil)
	require.NoError(t, err)

	got, ok := doc.AsString()
	require.True(t, ok)
	assert.Empty(t, got)
}

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	args, err := Split(`--name 'John Doe' -v "a b" plain`)
	require.NoError(t, err)
	assert.Equal(t, []string{"--name", "John Doe", "-v", "a b", "plain"}, args)
}

func TestSplitEmpty(t *testing.T) {
	args, err := Split("")
	require.NoError(t, err)
	assert.Empty(t, args)
}

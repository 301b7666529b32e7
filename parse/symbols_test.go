package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbols(t *testing.T) {
	s := Symbols("AOA-AO")

	assert.Equal(t, 2, s.CountOptions())
	assert.True(t, s.HasOption())
	assert.Equal(t, []int{1, 5}, s.OptionIndices())
	assert.Equal(t, []int{3}, s.SeparatorIndices())

	assert.False(t, Symbols("A-A").HasOption())
	assert.Empty(t, Symbols("AAA").OptionIndices())
}

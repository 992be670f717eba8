package templates

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	assert.Equal(t, "T0, T1, T2", prefixedStrings("T", 3))
	assert.Equal(t, "s0 *Cell[T0], s1 *Cell[T1]", cellParams(2))
	assert.Equal(t, "*Cell[T0]", cellTypes(1))
	assert.Equal(t, "s0.Get(), s1.Get()", getCalls(2))
	assert.Empty(t, getCalls(0))
}

func TestComputeGen(t *testing.T) {
	src, err := format.Source([]byte(ComputeGen(3)))
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package tr")
	assert.Contains(t, out, "func Compute1[T0, R comparable](")
	assert.Contains(t, out, "func Compute3[T0, T1, T2, R comparable](")
	assert.Contains(t, out, "return fn(s0.Get(), s1.Get(), s2.Get())")
	assert.Contains(t, out, "[]Source{s0, s1, s2}")
	assert.NotContains(t, out, "Compute4")
}

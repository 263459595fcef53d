package math_test

import (
	"testing"

	"github.com/graph-guard/chmap/pkg/math"
	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	require.Equal(t, 1.0, math.Max(-1.0, 1.0))
	require.Equal(t, 1.0, math.Max(1.0, -1.0))
	require.Equal(t, 8, math.Max(8, 3))
	require.Equal(t, "b", math.Max("a", "b"))
}

func TestMin(t *testing.T) {
	require.Equal(t, -1.0, math.Min(-1.0, 1.0))
	require.Equal(t, -1.0, math.Min(1.0, -1.0))
	require.Equal(t, 3, math.Min(8, 3))
	require.Equal(t, "a", math.Min("a", "b"))
}

package fset_test

import (
	"testing"

	"github.com/labm1997/monoflow/internal/fset"
	"github.com/stretchr/testify/require"
)

func TestUniverse_DiscardsDuplicates(t *testing.T) {
	u := fset.NewUniverse([]string{"a", "b", "a", "c"})
	require.Equal(t, 3, u.Len())
}

func TestEmptyFull(t *testing.T) {
	u := fset.NewUniverse([]string{"a", "b", "c"})
	require.True(t, u.Empty().Equal(u.Empty()))
	require.True(t, u.Full().SupersetOf(u.Empty()))
	require.ElementsMatch(t, []string{"a", "b", "c"}, u.Full().Items())
	require.Empty(t, u.Empty().Items())
}

func TestOf_IgnoresItemsOutsideUniverse(t *testing.T) {
	u := fset.NewUniverse([]string{"a", "b"})
	s := u.Of("a", "z")
	require.ElementsMatch(t, []string{"a"}, s.Items())
	require.False(t, s.Contains("z"))
}

func TestUnionIntersectDifference(t *testing.T) {
	u := fset.NewUniverse([]string{"a", "b", "c"})
	ab := u.Of("a", "b")
	bc := u.Of("b", "c")

	require.ElementsMatch(t, []string{"a", "b", "c"}, ab.Union(bc).Items())
	require.ElementsMatch(t, []string{"b"}, ab.Intersect(bc).Items())
	require.ElementsMatch(t, []string{"a"}, ab.Difference(bc).Items())
}

func TestSubsetSupersetOf(t *testing.T) {
	u := fset.NewUniverse([]string{"a", "b", "c"})
	small := u.Of("a")
	large := u.Of("a", "b")

	require.True(t, small.SubsetOf(large))
	require.False(t, large.SubsetOf(small))
	require.True(t, large.SupersetOf(small))
	require.False(t, small.SupersetOf(large))
}

func TestClone_IsIndependent(t *testing.T) {
	u := fset.NewUniverse([]string{"a", "b"})
	s := u.Of("a")
	clone := s.Clone()
	clone.Add("b")

	require.False(t, s.Contains("b"))
	require.True(t, clone.Contains("b"))
}

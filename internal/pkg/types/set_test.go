package types

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		set := NewSet[int]()
		assert.Empty(t, set)
	})

	t.Run("duplicate elements", func(t *testing.T) {
		set := NewSet(1, 2, 2, 3, 3, 3)
		assert.Len(t, set, 3)
		for i := 1; i <= 3; i++ {
			assert.Contains(t, set, i)
		}
	})
}

func TestSet_Add(t *testing.T) {
	set := NewSet("kovan")
	set.Add("mainnet", "kovan")

	assert.Len(t, set, 2)
	assert.True(t, set.Has("mainnet"))
}

func TestSet_Has(t *testing.T) {
	set := NewSet("rinkeby", "ropsten")

	assert.True(t, set.Has("rinkeby"))
	assert.False(t, set.Has("goerli"))
	assert.False(t, NewSet[string]().Has(""))
}

func TestSet_ToIter(t *testing.T) {
	set := NewSet(3, 1, 2)

	got := slices.Collect(set.ToIter())
	slices.Sort(got)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSorted(t *testing.T) {
	set := NewSet("ropsten", "kovan", "mainnet", "rinkeby")

	assert.Equal(t, []string{"kovan", "mainnet", "rinkeby", "ropsten"}, Sorted(set))
	assert.Empty(t, Sorted(NewSet[string]()))
}

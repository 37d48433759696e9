package eds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/simeds/pkg/eds"
)

func TestRegion(t *testing.T) {
	r := eds.Region{Start: 4, Len: 3, NVar: 2}
	assert.Equal(t, 7, r.End())
	assert.Equal(t, 1, r.MaxRow())
}

func TestRegionMapAdd(t *testing.T) {
	const n = 20
	rmap := eds.NewRegionMap()
	require.NoError(t, rmap.Add(eds.Region{Start: 10, Len: 3, NVar: 2}, n))
	require.NoError(t, rmap.Add(eds.Region{Start: 2, Len: 2, NVar: 1}, n))
	require.NoError(t, rmap.Add(eds.Region{Start: 13, Len: 1, NVar: 3}, n)) // touching is fine

	bad := []eds.Region{
		{Start: 9, Len: 2, NVar: 2},  // runs into 10
		{Start: 11, Len: 1, NVar: 2}, // inside 10..13
		{Start: 3, Len: 1, NVar: 2},  // inside 2..4
		{Start: 18, Len: 2, NVar: 2}, // reaches the end
		{Start: -1, Len: 1, NVar: 2},
		{Start: 5, Len: 0, NVar: 2},
		{Start: 5, Len: 1, NVar: 0},
		{Start: 10, Len: 1, NVar: 2}, // same start
	}
	for _, r := range bad {
		assert.Error(t, rmap.Add(r, n), "region %+v", r)
	}

	assert.Equal(t, 3, rmap.Len())
	assert.Equal(t, 6, rmap.Covered())
	assert.Equal(t, []int{2, 10, 13}, rmap.Starts())
	regs := rmap.Regions()
	require.Len(t, regs, 3)
	assert.Equal(t, eds.Region{Start: 10, Len: 3, NVar: 2}, regs[1])

	r, ok := rmap.Get(13)
	assert.True(t, ok)
	assert.Equal(t, 3, r.NVar)
	_, ok = rmap.Get(11)
	assert.False(t, ok)
}

// Package eds places degenerate regions on a genome, fills them with
// alternative symbols and writes the result as an elastic degenerate
// string, "ACG{T,GA,}CC...".
//
// The pieces are used in order: Place gives a RegionMap, Fill turns the
// genome and the map into a Matrix, then Count, Size and Encode read
// the matrix and map without changing them.
package eds

import (
	"fmt"
	"sort"
)

// Region is one degenerate stretch of the genome. It covers the
// half open interval [Start, Start+Len) and every position in it
// holds NVar alternative symbols.
type Region struct {
	Start int
	Len   int
	NVar  int
}

// End is one past the last position in the region.
func (r Region) End() int { return r.Start + r.Len }

// MaxRow is the index of the last alternative.
func (r Region) MaxRow() int { return r.NVar - 1 }

// RegionMap holds regions keyed by start position. No two regions
// overlap.
type RegionMap struct {
	byStart map[int]Region
	starts  []int
	sorted  bool
	covered int
}

// NewRegionMap
func NewRegionMap() *RegionMap {
	return &RegionMap{byStart: make(map[int]Region), sorted: true}
}

// put records a region the caller has already checked.
func (rm *RegionMap) put(r Region) {
	rm.byStart[r.Start] = r
	rm.starts = append(rm.starts, r.Start)
	rm.covered += r.Len
	if n := len(rm.starts); n > 1 && rm.starts[n-2] > r.Start {
		rm.sorted = false
	}
}

// Add puts a region into the map after checking it ends before the last
// position of a genome of length n and does not touch any region already
// there.
func (rm *RegionMap) Add(r Region, n int) error {
	switch {
	case r.Len < 1 || r.NVar < 1:
		return fmt.Errorf("region at %d: length %d, variants %d must both be positive", r.Start, r.Len, r.NVar)
	case r.Start < 0 || r.End() >= n:
		return fmt.Errorf("region [%d,%d) does not fit in genome of length %d", r.Start, r.End(), n)
	}
	starts := rm.Starts()
	i := sort.SearchInts(starts, r.Start)
	if i < len(starts) && starts[i] < r.End() {
		return fmt.Errorf("region [%d,%d) overlaps region at %d", r.Start, r.End(), starts[i])
	}
	if i > 0 && rm.byStart[starts[i-1]].End() > r.Start {
		return fmt.Errorf("region [%d,%d) overlaps region at %d", r.Start, r.End(), starts[i-1])
	}
	rm.put(r)
	return nil
}

// Get returns the region starting at pos, if there is one.
func (rm *RegionMap) Get(pos int) (Region, bool) {
	r, ok := rm.byStart[pos]
	return r, ok
}

// Len is the number of regions.
func (rm *RegionMap) Len() int { return len(rm.starts) }

// Covered is the number of genome positions inside some region.
func (rm *RegionMap) Covered() int { return rm.covered }

// Starts returns the region start positions in ascending order.
// The slice belongs to the map.
func (rm *RegionMap) Starts() []int {
	if !rm.sorted {
		sort.Ints(rm.starts)
		rm.sorted = true
	}
	return rm.starts
}

// Regions returns the regions in order of position.
func (rm *RegionMap) Regions() []Region {
	ret := make([]Region, 0, rm.Len())
	for _, s := range rm.Starts() {
		ret = append(ret, rm.byStart[s])
	}
	return ret
}

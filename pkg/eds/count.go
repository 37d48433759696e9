package eds

import (
	"github.com/andrew-torda/simeds/pkg/seq/common"
)

// rowKinds looks at each alternative of a region and says how many
// have at least one real symbol, and whether any is nothing but epsilon.
func rowKinds(mat Matrix, r Region) (nonEmpty int, empty bool) {
	for row := 0; row <= r.MaxRow(); row++ {
		hasSym := false
		for col := r.Start; col < r.End(); col++ {
			if mat[col][row] != common.EpsChar {
				hasSym = true
				break
			}
		}
		if hasSym {
			nonEmpty++
		} else {
			empty = true
		}
	}
	return nonEmpty, empty
}

// Count returns m, the number of strings the elastic degenerate string
// is made of. Each solid run between regions is one string. Each
// alternative with a real symbol is one string, and a region with one
// or more empty alternatives adds one more for the empty string.
func Count(rmap *RegionMap, mat Matrix, n int) int {
	m := 0
	pos := 0
	for _, r := range rmap.Regions() {
		if r.Start > pos {
			m++
		}
		nonEmpty, empty := rowKinds(mat, r)
		m += nonEmpty
		if empty {
			m++
		}
		pos = r.End()
	}
	if pos < n {
		m++
	}
	return m
}

// Size is the total number of symbols written out, not counting
// brackets and commas: the solid runs plus every alternative.
func Size(rmap *RegionMap, mat Matrix, n int) int {
	size := n - rmap.Covered()
	for _, r := range rmap.Regions() {
		for col := r.Start; col < r.End(); col++ {
			for _, c := range mat[col] {
				if c != common.EpsChar {
					size++
				}
			}
		}
	}
	return size
}

package eds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/simeds/pkg/eds"
)

// alts is a region given by its alternatives, each written out in
// full, with '*' for epsilon.
type alts struct {
	start int
	rows  []string
}

// build makes a matrix and region map from a genome and some regions
// whose contents we choose ourselves.
func build(t *testing.T, genome string, regs ...alts) (eds.Matrix, *eds.RegionMap) {
	t.Helper()
	mat := make(eds.Matrix, len(genome))
	for i := range genome {
		mat[i] = []byte{genome[i]}
	}
	rmap := eds.NewRegionMap()
	for _, a := range regs {
		r := eds.Region{Start: a.start, Len: len(a.rows[0]), NVar: len(a.rows)}
		require.NoError(t, rmap.Add(r, len(genome)))
		for col := r.Start; col < r.End(); col++ {
			mat[col] = make([]byte, r.NVar)
			for row, s := range a.rows {
				require.Len(t, s, r.Len)
				mat[col][row] = s[col-r.Start]
			}
		}
	}
	return mat, rmap
}

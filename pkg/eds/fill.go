package eds

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/andrew-torda/simeds/pkg/randseq"
)

// Matrix holds the candidate symbols at each genome position.
// mat[i][j] is alternative j at position i. Outside a region there is
// exactly one, the original base.
type Matrix [][]byte

// drawCol picks k symbols for one position. If distinct is set, no
// symbol appears twice, which can only work if k fits in the alphabet.
func drawCol(smp randseq.Sampler, k int, withEps, distinct bool) []byte {
	if nsym := len(randseq.Alphabet(withEps)); distinct && k > nsym {
		panic(fmt.Errorf("%w: %d distinct symbols wanted from %d", ErrAlphabetExhaustion, k, nsym))
	}
	col := make([]byte, 0, k)
	for len(col) < k {
		c := smp.Sym(withEps)
		if distinct && bytes.IndexByte(col, c) != -1 {
			continue
		}
		col = append(col, c)
	}
	return col
}

// Fill builds the variant matrix. Positions in a region get NVar
// symbols, pairwise different as long as NVar is no bigger than the
// alphabet. Past that, repeats are allowed, since there would be no way
// to finish otherwise. The epsilon symbol is only drawn if withEps is set.
func Fill(rnd *rand.Rand, genome []byte, rmap *RegionMap, withEps bool) Matrix {
	mat := make(Matrix, len(genome))
	solid := bytes.Clone(genome) // one backing array for all the singletons
	for i := range solid {
		mat[i] = solid[i : i+1 : i+1]
	}

	smp := randseq.NewSampler(rnd)
	nsym := len(randseq.Alphabet(withEps))
	for _, r := range rmap.Regions() {
		distinct := r.NVar <= nsym
		for i := r.Start; i < r.End(); i++ {
			mat[i] = drawCol(smp, r.NVar, withEps, distinct)
		}
	}
	return mat
}

package eds

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/golang-collections/go-datastructures/bitarray"
)

// Placement describes the regions we want.
type Placement struct {
	N             int // genome length
	MaxDegenerate int // number of regions to place
	MaxVar        int // variant counts are drawn from [1, MaxVar)
	MaxLen        int // region lengths are drawn from [1, MaxLen]
	MaxRetry      int // attempts before giving up. Zero means DfltRetry(N)
}

// ctxCheck is how many attempts go by between looks at the context.
const ctxCheck = 1024

// DfltRetry is the attempt budget for a genome of length n.
func DfltRetry(n int) int {
	const minRetry = 1000
	return max(100*n, minRetry)
}

func (p Placement) check() error {
	const msg = "%w: genome length %d, variants %d, region length %d, regions %d"
	if p.N < 1 || p.MaxVar < 2 || p.MaxLen < 1 || p.MaxDegenerate < 0 {
		return fmt.Errorf(msg, ErrInvalidConfig, p.N, p.MaxVar, p.MaxLen, p.MaxDegenerate)
	}
	return nil
}

// getBit reads a position we know is inside the array.
func getBit(ba bitarray.BitArray, i int) bool {
	b, err := ba.GetBit(uint64(i))
	if err != nil {
		panic(err)
	}
	return b
}

func setBit(ba bitarray.BitArray, i int) {
	if err := ba.SetBit(uint64(i)); err != nil {
		panic(err)
	}
}

// anySet tells us if any position in [from, to) is set.
func anySet(ba bitarray.BitArray, from, to int) bool {
	for i := from; i < to; i++ {
		if getBit(ba, i) {
			return true
		}
	}
	return false
}

// Place scatters p.MaxDegenerate non-overlapping regions over a genome
// by rejection sampling. A start position is only ever tried once.
// Each loop costs one attempt, whether it is rejected or not. If the
// budget runs out, or every start has been tried, we return an
// *InfeasibleError and no map at all.
func Place(ctx context.Context, rnd *rand.Rand, p Placement) (*RegionMap, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	rmap := NewRegionMap()
	if p.MaxDegenerate == 0 {
		return rmap, nil
	}
	maxRetry := p.MaxRetry
	if maxRetry <= 0 {
		maxRetry = DfltRetry(p.N)
	}

	tried := bitarray.NewBitArray(uint64(p.N))
	covered := bitarray.NewBitArray(uint64(p.N))
	nTried := 0
	for attempt := 0; rmap.Len() < p.MaxDegenerate; attempt++ {
		if attempt >= maxRetry || nTried == p.N {
			return nil, &InfeasibleError{Want: p.MaxDegenerate, Got: rmap.Len(), Attempts: attempt, NTried: nTried}
		}
		if attempt%ctxCheck == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("placing regions after %d attempts: %w", attempt, err)
			}
		}

		start := rnd.Intn(p.N)
		if getBit(tried, start) {
			continue
		}
		setBit(tried, start)
		nTried++

		nvar := 1 + rnd.Intn(p.MaxVar-1)
		l := 1 + rnd.Intn(p.MaxLen)
		end := start + l
		if end >= p.N { // would run off the end
			continue
		}
		if anySet(covered, start, end) {
			continue
		}
		for i := start; i < end; i++ {
			setBit(covered, i)
		}
		rmap.put(Region{Start: start, Len: l, NVar: nvar})
	}
	rmap.Starts()
	return rmap, nil
}

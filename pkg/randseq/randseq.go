// 31 July 2020

// Package randseq makes the random genomes and random symbols which the
// degenerate regions are filled with. Everything draws from a *rand.Rand
// handed in by the caller, so a fixed seed gives a fixed result.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/andrew-torda/simeds/pkg/seq"
	"github.com/andrew-torda/simeds/pkg/seq/common"
)

// NNtide is the number of nucleotides a genome is built from.
const NNtide = 4

var (
	ntides  = []byte{'A', 'T', 'C', 'G'}
	elastic = []byte{'A', 'T', 'C', 'G', common.EpsChar}
)

// Alphabet returns the symbols a degenerate position may be filled from.
// With elastic set, the epsilon symbol is one of them.
func Alphabet(withEps bool) []byte {
	if withEps {
		return elastic
	}
	return ntides
}

// NewRand gives us a random source. A seed of zero means take one
// from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sampler draws single symbols.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler
func NewSampler(rnd *rand.Rand) Sampler { return Sampler{rnd: rnd} }

// Base returns one of A, T, C or G.
func (s Sampler) Base() byte { return ntides[s.rnd.Intn(len(ntides))] }

// Sym returns a symbol from Alphabet(withEps).
func (s Sampler) Sym(withEps bool) byte {
	a := Alphabet(withEps)
	return a[s.rnd.Intn(len(a))]
}

// Genome returns a uniform random nucleotide sequence of length n.
func Genome(n int, rnd *rand.Rand) []byte {
	s := NewSampler(rnd)
	ret := make([]byte, n)
	for i := range ret {
		ret[i] = s.Base()
	}
	return ret
}

// RandSeqArgs is the set of arguments for writing a random genome
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequence
	Len   int       // Length of the sequence
}

// RandSeqMain writes one random genome in fasta format. The comment
// line is "> Cmmt Len".
func RandSeqMain(args *RandSeqArgs) error {
	if args.Len < 1 {
		return fmt.Errorf("genome length must be at least 1, got %d", args.Len)
	}
	g := Genome(args.Len, NewRand(args.Iseed))
	cmmt := fmt.Sprintf("%s %d", args.Cmmt, args.Len)
	return seq.WriteFasta(args.Wrtr, cmmt, g)
}

package eds

import (
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/simeds/pkg/randseq"
)

// Composition counts which symbols ended up at each alternative.
// Row i is symbol randseq.Alphabet(true)[i] (epsilon last) and column j
// is alternative j, so Mat[0][1] is the number of times A was
// alternative 1 at some position. It returns nil if there are no regions.
func Composition(rmap *RegionMap, mat Matrix) *matrix.FMatrix2d {
	if rmap.Len() == 0 {
		return nil
	}
	ncol := 0
	for _, r := range rmap.Regions() {
		ncol = max(ncol, r.NVar)
	}
	alpha := randseq.Alphabet(true)
	var symRow [256]int
	for i, c := range alpha {
		symRow[c] = i
	}
	counts := matrix.NewFMatrix2d(len(alpha), ncol)
	for _, r := range rmap.Regions() {
		for col := r.Start; col < r.End(); col++ {
			for j, c := range mat[col] {
				counts.Mat[symRow[c]][j]++
			}
		}
	}
	return counts
}

// WrtComposition prints a composition table, one line per symbol.
func WrtComposition(w io.Writer, counts *matrix.FMatrix2d) error {
	if counts == nil {
		return nil
	}
	_, ncol := counts.Size()
	fmt.Fprint(w, "sym")
	for j := 0; j < ncol; j++ {
		fmt.Fprintf(w, "\t%d", j)
	}
	fmt.Fprintln(w)
	for i, c := range randseq.Alphabet(true) {
		fmt.Fprintf(w, "%c", c)
		for _, v := range counts.Mat[i] {
			fmt.Fprintf(w, "\t%.0f", v)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

package eds

import (
	"bufio"
	"io"
	"strings"

	"github.com/andrew-torda/simeds/pkg/seq/common"
)

// Encode writes the matrix as an elastic degenerate string. Solid
// positions are written as they are. A region becomes
// {alt0,alt1,...}, each alternative read along its row, with epsilon
// symbols left out. Nothing is added after the last symbol.
func Encode(w io.Writer, mat Matrix, rmap *RegionMap, n int) error {
	bw := bufio.NewWriter(w)
	for pos := 0; pos < n; {
		r, ok := rmap.Get(pos)
		if !ok {
			bw.WriteByte(mat[pos][0])
			pos++
			continue
		}
		bw.WriteByte('{')
		for row := 0; row <= r.MaxRow(); row++ {
			if row > 0 {
				bw.WriteByte(',')
			}
			for col := r.Start; col < r.End(); col++ {
				if c := mat[col][row]; c != common.EpsChar {
					bw.WriteByte(c)
				}
			}
		}
		bw.WriteByte('}')
		pos = r.End()
	}
	return bw.Flush() // bufio errors stick, so this catches them all
}

// EncodeString is Encode into a string.
func EncodeString(mat Matrix, rmap *RegionMap, n int) string {
	var sb strings.Builder
	Encode(&sb, mat, rmap, n) // a strings.Builder does not fail
	return sb.String()
}

// Package white strips white space from sequence data as it comes
// off the fasta lexer.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove acts on a byte slice, in place, and removes all the white
// space. The slice comes back with the length adjusted, but the capacity
// unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// Has tells us if there is any white space in a slice.
func Has(s []byte) bool {
	for _, c := range s {
		if asciiSpace[c] {
			return true
		}
	}
	return false
}

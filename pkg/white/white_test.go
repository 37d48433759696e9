package white_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrew-torda/simeds/pkg/white"
)

// TestRemove
func TestRemove(t *testing.T) {
	ss := []string{
		"acgtacgtacg",
		" a c g t a c g t a c g",
		"a c g tac gta cg",
		"   acgtacgtacg    ",
		"a   c      gtacgtacg\n ",
		"a  c  g  t   a    c     gtacg",
		"acgtacgtac   g",
		"acgtacgtac\r\ng",
		"\tacgtacgtacg",
	}
	for _, s := range ss {
		b := []byte(s)
		c := cap(b)
		white.Remove(&b)
		assert.Equal(t, "acgtacgtacg", string(b), "white remove broke on %q", s)
		assert.Equal(t, c, cap(b))
	}
}

func TestRemoveEmpty(t *testing.T) {
	for _, s := range []string{"", " ", "\n\n\t "} {
		b := []byte(s)
		white.Remove(&b)
		assert.Len(t, b, 0)
	}
}

func TestHas(t *testing.T) {
	assert.False(t, white.Has([]byte("ACGT")))
	assert.True(t, white.Has([]byte("AC GT")))
	assert.False(t, white.Has(nil))
}

func BenchmarkRemove(b *testing.B) {
	s := strings.Repeat("acgtacgtac ", 6) + "\n"
	s = strings.Repeat(s, 10)
	for i := 0; i < b.N; i++ {
		tt := []byte(s)
		white.Remove(&tt)
	}
}

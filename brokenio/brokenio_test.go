package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/simeds/brokenio"
)

const longstring = "0123456789012345678901234567890123456789"

func TestNoFailure(t *testing.T) {
	r := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)), 1)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, longstring, string(b))
	assert.Equal(t, len(longstring), r.NByte())
	assert.NoError(t, r.Close())
}

func TestZeroFile(t *testing.T) {
	r := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)), 1)
	r.SetProbZeroFile(1)
	b, err := io.ReadAll(r)
	require.NoError(t, err) // ReadAll swallows io.EOF
	assert.Len(t, b, 0)
}

func TestAlwaysFail(t *testing.T) {
	for _, frac := range []float32{0.1, 0.5, 1} {
		r := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)), 7)
		r.SetProbFail(1)
		r.SetFracFail(frac)
		p := make([]byte, len(longstring))
		n, err := r.Read(p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, brokenio.ErrBroken))
		want := int(float32(len(longstring)) * (1 - frac))
		assert.Equal(t, want, n)
		assert.Equal(t, longstring[:n], string(p[:n]))
	}
}

package simeds_test

import (
	"errors"
	"flag"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/simeds/pkg/eds"
	"github.com/andrew-torda/simeds/pkg/seq/common"
	"github.com/andrew-torda/simeds/pkg/simeds"
)

func TestValidate(t *testing.T) {
	good := simeds.DfltConfig()
	good.N = 100
	require.NoError(t, good.Validate())

	withFasta := simeds.DfltConfig()
	withFasta.Fasta = "some.fa"
	require.NoError(t, withFasta.Validate())

	bad := []func(c *simeds.Config){
		func(c *simeds.Config) { c.N = 0 },
		func(c *simeds.Config) { c.N = -5; c.Fasta = "x.fa" },
		func(c *simeds.Config) { c.D = -1 },
		func(c *simeds.Config) { c.D = 100.5 },
		func(c *simeds.Config) { c.S = 1 },
		func(c *simeds.Config) { c.L = 0 },
		func(c *simeds.Config) { c.MaxRetry = -1 },
	}
	for i, f := range bad {
		c := good
		f(&c)
		err := c.Validate()
		assert.True(t, errors.Is(err, eds.ErrInvalidConfig), "case %d gave %v", i, err)
	}
}

func TestMaxDegenerate(t *testing.T) {
	tests := []struct {
		d    float64
		n    int
		want int
	}{
		{10, 1000000, 100000},
		{10, 15, 1},
		{0, 1000, 0},
		{100, 7, 7},
		{2.5, 100, 2},
		{33.3, 10, 3},
	}
	for _, tt := range tests {
		c := simeds.Config{D: tt.d}
		assert.Equal(t, tt.want, c.MaxDegenerate(tt.n), "d %g n %d", tt.d, tt.n)
	}
}

func TestReadConfig(t *testing.T) {
	fname, err := common.WrtTemp(`
n = 5000
percent_degenerate = 2.5
max_variants = 4
max_length = 3
elastic = true
seed = 42
label = "chr_test"
`)
	require.NoError(t, err)
	defer os.Remove(fname)

	c := simeds.DfltConfig()
	require.NoError(t, simeds.ReadConfig(fname, &c))
	assert.Equal(t, 5000, c.N)
	assert.Equal(t, 2.5, c.D)
	assert.Equal(t, 4, c.S)
	assert.Equal(t, 3, c.L)
	assert.True(t, c.Elastic)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, "chr_test", c.Label)
}

func TestReadConfigBad(t *testing.T) {
	for _, s := range []string{"nn = 5\n", "n = \n", "max_length = \"three\"\n"} {
		fname, err := common.WrtTemp(s)
		require.NoError(t, err)
		defer os.Remove(fname)
		c := simeds.DfltConfig()
		err = simeds.ReadConfig(fname, &c)
		assert.True(t, errors.Is(err, eds.ErrInvalidConfig), "%q gave %v", s, err)
	}
	c := simeds.DfltConfig()
	assert.Error(t, simeds.ReadConfig("/not/a/file.toml", &c))
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("simeds", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseArgs(t *testing.T) {
	cfg, err := simeds.ParseArgs(newFlagSet(), []string{"-d", "5", "-s", "4", "-l", "3", "-e", "-t", "2s", "1000"})
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.N)
	assert.Equal(t, 5.0, cfg.D)
	assert.Equal(t, 4, cfg.S)
	assert.Equal(t, 3, cfg.L)
	assert.True(t, cfg.Elastic)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "simeds", cfg.Label)

	cfg, err = simeds.ParseArgs(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, simeds.DfltConfig(), *cfg)
	assert.Error(t, cfg.Validate()) // no genome

	_, err = simeds.ParseArgs(newFlagSet(), []string{"ten"})
	assert.True(t, errors.Is(err, eds.ErrInvalidConfig))
	_, err = simeds.ParseArgs(newFlagSet(), []string{"10", "20"})
	assert.True(t, errors.Is(err, eds.ErrInvalidConfig))
	_, err = simeds.ParseArgs(newFlagSet(), []string{"-q"})
	assert.Error(t, err)
}

// Flags on the command line win over the config file.
func TestParseArgsConfigFile(t *testing.T) {
	fname, err := common.WrtTemp("n = 300\nmax_length = 4\nmax_variants = 5\n")
	require.NoError(t, err)
	defer os.Remove(fname)

	cfg, err := simeds.ParseArgs(newFlagSet(), []string{"-l", "2", "-c", fname})
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.N)
	assert.Equal(t, 2, cfg.L)
	assert.Equal(t, 5, cfg.S)
	assert.Equal(t, 10.0, cfg.D) // default survives

	cfg, err = simeds.ParseArgs(newFlagSet(), []string{"-c", fname, "700"})
	require.NoError(t, err)
	assert.Equal(t, 700, cfg.N)
}

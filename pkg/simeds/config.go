package simeds

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/andrew-torda/simeds/pkg/eds"
)

// Config is everything a run needs. It can come from flags, a toml
// file or both, with flags winning.
type Config struct {
	Fasta    string        `toml:"fasta"`              // read the genome from here
	N        int           `toml:"n"`                  // or make a random genome this long
	Generate bool          `toml:"generate"`           // just write the genome and stop
	Elastic  bool          `toml:"elastic"`            // allow empty alternatives
	D        float64       `toml:"percent_degenerate"` // percentage of degenerate loci
	S        int           `toml:"max_variants"`       // variant counts come from [1, S)
	L        int           `toml:"max_length"`         // max length of a degenerate region
	MaxRetry int           `toml:"max_retry"`          // placement attempts, 0 for the default
	Seed     int64         `toml:"seed"`               // 0 means seed from the clock
	Label    string        `toml:"label"`              // name on the fasta comment line
	Outfile  string        `toml:"outfile"`            // "" or "-" is stdout
	Compress bool          `toml:"compress"`           // snappy framed output
	Verbose  bool          `toml:"verbose"`
	Profile  bool          `toml:"profile"`
	Timeout  time.Duration `toml:"-"`
	Wrtr     io.Writer     `toml:"-"` // if set, used instead of Outfile
}

// DfltConfig has the defaults the command line starts from.
func DfltConfig() Config {
	return Config{
		D:     10,
		S:     2,
		L:     1,
		Label: "simeds",
	}
}

// percent is floor(d % of n).
func percent(d float64, n int) int {
	return int(math.Floor(d / 100 * float64(n)))
}

// MaxDegenerate is the number of regions wanted for a genome of length n.
func (c *Config) MaxDegenerate(n int) int { return percent(c.D, n) }

// Validate checks the things which can be checked before we have a genome.
func (c *Config) Validate() error {
	var probs []string
	if c.Fasta == "" && c.N <= 0 {
		probs = append(probs, "need a genome length or a fasta file")
	}
	if c.N < 0 {
		probs = append(probs, fmt.Sprintf("genome length %d is negative", c.N))
	}
	if c.D < 0 || c.D > 100 || math.IsNaN(c.D) {
		probs = append(probs, fmt.Sprintf("percent degenerate %g is not in [0,100]", c.D))
	}
	if c.S < 2 {
		probs = append(probs, fmt.Sprintf("max variants %d is less than 2", c.S))
	}
	if c.L < 1 {
		probs = append(probs, fmt.Sprintf("max length %d is less than 1", c.L))
	}
	if c.MaxRetry < 0 {
		probs = append(probs, fmt.Sprintf("max retry %d is negative", c.MaxRetry))
	}
	if len(probs) > 0 {
		return fmt.Errorf("%w: %s", eds.ErrInvalidConfig, strings.Join(probs, ", "))
	}
	return nil
}

// ReadConfig fills in c from a toml file. Keys we do not know about are
// an error, since they are probably typing mistakes.
func ReadConfig(fname string, c *Config) error {
	md, err := toml.DecodeFile(fname, c)
	if err != nil {
		return fmt.Errorf("%w: config file %s: %w", eds.ErrInvalidConfig, fname, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: config file %s: unknown keys %s", eds.ErrInvalidConfig, fname, strings.Join(keys, ", "))
	}
	return nil
}

// BindFlags defines the command line flags on fs, storing into c.
// The current contents of c are the defaults.
func BindFlags(fs *flag.FlagSet, c *Config) {
	fs.StringVar(&c.Fasta, "f", c.Fasta, "read genome from first sequence of this fasta file")
	fs.BoolVar(&c.Generate, "g", c.Generate, "write the genome in fasta format and exit")
	fs.BoolVar(&c.Elastic, "e", c.Elastic, "elastic, allow empty alternatives")
	fs.Float64Var(&c.D, "d", c.D, "percentage of degenerate loci")
	fs.IntVar(&c.S, "s", c.S, "max number of variants in a degenerate position (exclusive)")
	fs.IntVar(&c.L, "l", c.L, "max length of a degenerate segment")
	fs.IntVar(&c.MaxRetry, "m", c.MaxRetry, "max placement attempts, 0 gives 100 per base")
	fs.Int64Var(&c.Seed, "r", c.Seed, "random number seed, 0 to use the clock")
	fs.StringVar(&c.Label, "label", c.Label, "name for the fasta comment line")
	fs.StringVar(&c.Outfile, "o", c.Outfile, "output file, - for stdout")
	fs.BoolVar(&c.Compress, "z", c.Compress, "snappy compress the output")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose, print regions and composition")
	fs.BoolVar(&c.Profile, "p", c.Profile, "write a cpu profile to the current directory")
	fs.DurationVar(&c.Timeout, "t", c.Timeout, "give up after this long, 0 for never")
}

// ParseArgs builds a Config from the command line. A config file given
// with -c is read first, then any flags which were set on the command
// line are applied on top of it. An optional argument is the genome length.
func ParseArgs(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := DfltConfig()
	var cfgFile string
	fs.StringVar(&cfgFile, "c", "", "toml configuration file")
	BindFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		fileCfg := DfltConfig()
		if err := ReadConfig(cfgFile, &fileCfg); err != nil {
			return nil, err
		}
		over := flag.NewFlagSet("override", flag.ContinueOnError)
		BindFlags(over, &fileCfg)
		var err error
		fs.Visit(func(f *flag.Flag) {
			if f.Name != "c" && err == nil {
				err = over.Set(f.Name, f.Value.String())
			}
		})
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	switch fs.NArg() {
	case 0:
	case 1:
		n, err := strconv.ParseUint(fs.Arg(0), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: genome length %q: %w", eds.ErrInvalidConfig, fs.Arg(0), err)
		}
		cfg.N = int(n)
	default:
		return nil, fmt.Errorf("%w: expected at most one argument, got %d", eds.ErrInvalidConfig, fs.NArg())
	}
	return &cfg, nil
}

// Package simeds is the main part of the program. It gets a genome,
// puts degenerate regions on it and writes the elastic degenerate string.
package simeds

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/andrew-torda/simeds/pkg/eds"
	"github.com/andrew-torda/simeds/pkg/randseq"
	"github.com/andrew-torda/simeds/pkg/seq"
)

// Logger gets the diagnostics. Nothing but the result goes to the output.
var Logger = logrus.New()

// Stats is what we report about a finished run.
type Stats struct {
	N       int // genome length
	NRegion int
	Covered int // positions inside regions
	Size    int // symbols in the output, without brackets and commas
	M       int // number of strings
}

// getGenome reads the genome or makes one up.
func getGenome(cfg *Config, rnd *rand.Rand, lg *logrus.Entry) ([]byte, error) {
	if cfg.Fasta == "" {
		return randseq.Genome(cfg.N, rnd), nil
	}
	genome, name, err := seq.ReadGenome(cfg.Fasta)
	if err != nil {
		return nil, err
	}
	lg.WithFields(logrus.Fields{"sequence": name, "bases": len(genome)}).Info("done processing fasta")
	return genome, nil
}

// openOut gives us somewhere to write. The returned function closes
// whatever was opened.
func openOut(cfg *Config) (io.Writer, func() error, error) {
	nothing := func() error { return nil }
	switch {
	case cfg.Wrtr != nil:
		return cfg.Wrtr, nothing, nil
	case cfg.Outfile == "" || cfg.Outfile == "-":
		return os.Stdout, nothing, nil
	}
	fp, err := os.Create(cfg.Outfile)
	if err != nil {
		return nil, nil, fmt.Errorf("output file %v: %w", cfg.Outfile, err)
	}
	return fp, fp.Close, nil
}

// writeOut sends the finished result to its destination, compressing
// on the way if asked to.
func writeOut(cfg *Config, data []byte) error {
	w, closeFn, err := openOut(cfg)
	if err != nil {
		return err
	}
	if cfg.Compress {
		sw := snappy.NewBufferedWriter(w)
		if _, err = sw.Write(data); err == nil {
			err = sw.Close()
		}
	} else {
		_, err = w.Write(data)
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// logConfig prints the settings and warns if they ask for a lot of variation.
func logConfig(cfg *Config, n int, lg *logrus.Entry) {
	maxDeg := cfg.MaxDegenerate(n)
	lg.WithFields(logrus.Fields{
		"n":              n,
		"d":              cfg.D,
		"s":              cfg.S,
		"l":              cfg.L,
		"elastic":        cfg.Elastic,
		"max_degenerate": maxDeg,
		"max_retry":      cfg.MaxRetry,
	}).Info("config")
	if maxDeg > 0 && maxDeg*cfg.L >= percent(25, n) {
		lg.Warnf("too much variation: up to %d of %d positions may be degenerate, 25%% or more", maxDeg*cfg.L, n)
	}
}

// logRegions is the per region table, only wanted when verbose.
func logRegions(rmap *eds.RegionMap, mat eds.Matrix, lg *logrus.Entry) {
	if !Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for _, r := range rmap.Regions() {
		lg.Debugf("locus %d\tl %d\ts %d", r.Start, r.Len, r.NVar)
	}
	var sb strings.Builder
	if err := eds.WrtComposition(&sb, eds.Composition(rmap, mat)); err == nil && sb.Len() > 0 {
		lg.Debug("composition by alternative\n" + sb.String())
	}
}

// Degenerate runs the part of the pipeline which does not touch files.
// The encoded result is only returned when every step worked.
func Degenerate(ctx context.Context, cfg *Config, rnd *rand.Rand, genome []byte, lg *logrus.Entry) ([]byte, Stats, error) {
	n := len(genome)
	p := eds.Placement{
		N:             n,
		MaxDegenerate: cfg.MaxDegenerate(n),
		MaxVar:        cfg.S,
		MaxLen:        cfg.L,
		MaxRetry:      cfg.MaxRetry,
	}
	rmap, err := eds.Place(ctx, rnd, p)
	if err != nil {
		return nil, Stats{}, err
	}
	mat := eds.Fill(rnd, genome, rmap, cfg.Elastic)
	logRegions(rmap, mat, lg)

	st := Stats{
		N:       n,
		NRegion: rmap.Len(),
		Covered: rmap.Covered(),
		Size:    eds.Size(rmap, mat, n),
		M:       eds.Count(rmap, mat, n),
	}
	var buf bytes.Buffer
	buf.Grow(st.Size + 2*st.NRegion + n - st.Covered)
	if err := eds.Encode(&buf, mat, rmap, n); err != nil {
		return nil, Stats{}, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), st, nil
}

// Mymain is the whole program once the arguments are sorted out.
// Output is held back until everything has worked, so a failed run
// writes nothing.
func Mymain(ctx context.Context, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose {
		Logger.SetLevel(logrus.DebugLevel)
	} else {
		Logger.SetLevel(logrus.InfoLevel)
	}
	runID, err := uuid.NewUUID()
	if err != nil {
		return err
	}
	lg := Logger.WithField("run", runID.String())

	if cfg.Profile {
		defer profile.Start(profile.ProfilePath("."), profile.Quiet).Stop()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	rnd := randseq.NewRand(cfg.Seed)
	if cfg.Generate && cfg.Fasta == "" {
		var buf bytes.Buffer
		args := randseq.RandSeqArgs{Iseed: cfg.Seed, Wrtr: &buf, Cmmt: cfg.Label, Len: cfg.N}
		if err := randseq.RandSeqMain(&args); err != nil {
			return err
		}
		return writeOut(cfg, buf.Bytes())
	}

	genome, err := getGenome(cfg, rnd, lg)
	if err != nil {
		return fmt.Errorf("getting genome: %w", err)
	}
	if cfg.Generate {
		var buf bytes.Buffer
		if err := seq.WriteFasta(&buf, fmt.Sprintf("%s %d", cfg.Label, len(genome)), genome); err != nil {
			return err
		}
		return writeOut(cfg, buf.Bytes())
	}

	logConfig(cfg, len(genome), lg)
	out, st, err := Degenerate(ctx, cfg, rnd, genome, lg)
	if err != nil {
		return err
	}
	lg.WithFields(logrus.Fields{
		"regions": st.NRegion,
		"covered": st.Covered,
		"size":    st.Size,
		"m":       st.M,
	}).Info("stats")
	return writeOut(cfg, out)
}

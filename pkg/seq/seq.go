// 20 Dec 2017

// Package seq reads and writes the sequences which simeds starts from.
// They usually begin their lives in fasta format.
package seq

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ErrMalformedInput covers sequence input which is empty, unreadable,
// has no records or has symbols we cannot use.
var ErrMalformedInput = errors.New("malformed sequence input")

// seq is one record from a fasta file.
type seq struct {
	cmmt string
	seq  []byte
}

// Options contains all the choices passed in from the caller.
type Options struct {
	MaxSeq int // Stop after this many sequences. Zero means read them all.
}

// SeqGrp is a group of sequences.
type SeqGrp struct {
	seqs []seq
}

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s seq) GetCmmt() string { return s.cmmt }

// Len
func (s seq) Len() int { return len(s.seq) }

// Id returns the first word of the comment, which is usually the
// sequence identifier.
func (s seq) Id() string {
	if f := bytes.Fields([]byte(s.cmmt)); len(f) > 0 {
		return string(f[0])
	}
	return ""
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
func (s *seq) Upper() {
	const diff = 'a' - 'A'
	for i, c := range s.seq {
		if 'a' <= c && c <= 'z' {
			s.seq[i] = c - diff
		}
	}
}

// ntide is the set of symbols a genome may contain.
var ntide = [256]bool{'A': true, 'C': true, 'G': true, 'T': true}

// CheckNtide returns an error at the first symbol which is not
// one of A, C, G or T. Call Upper first if the input may be lower case.
func (s seq) CheckNtide() error {
	const symerr = "%w: bad sym \"%c\" at position %d in \"%s\""
	for i, c := range s.seq {
		if !ntide[c] {
			return fmt.Errorf(symerr, ErrMalformedInput, c, i, trimStr(s.cmmt, 40))
		}
	}
	return nil
}

// GetNSeq returns the number of sequences
func (seqgrp *SeqGrp) GetNSeq() int { return len(seqgrp.seqs) }

// SeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// GetLen returns the length of the first sequence.
func (seqgrp *SeqGrp) GetLen() int { return len(seqgrp.seqs[0].GetSeq()) }

// byMmap maps a file read-only and hands it to the fasta reader.
// The sequences are copied out of the mapping, so it can be dropped
// as soon as we are finished.
func byMmap(fp *os.File, seqgrp *SeqGrp, s_opts *Options) error {
	fi, err := fp.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if fi.Size() == 0 { // cannot map an empty file
		return fmt.Errorf("%w: %s is empty", ErrMalformedInput, fp.Name())
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	defer mm.Unmap()
	return ReadFasta(bytes.NewReader(mm), seqgrp, s_opts)
}

// Readfile takes a filename and reads sequences from it.
// An empty name or "-" means standard input. Anything else is memory mapped.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	seqgrp := new(SeqGrp)
	if fname == "" || fname == "-" {
		if err := ReadFasta(os.Stdin, seqgrp, s_opts); err != nil {
			return nil, err
		}
		return seqgrp, nil
	}

	fp, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	defer fp.Close()
	if err := byMmap(fp, seqgrp, s_opts); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	return seqgrp, nil
}

// ReadGenome returns the first sequence in a fasta file, upper cased and
// checked to be a nucleotide sequence, along with its identifier.
func ReadGenome(fname string) (genome []byte, id string, err error) {
	seqgrp, err := Readfile(fname, &Options{MaxSeq: 1})
	if err != nil {
		return nil, "", err
	}
	s := seqgrp.seqs[0]
	s.Upper()
	if err := s.CheckNtide(); err != nil {
		return nil, "", err
	}
	return s.GetSeq(), s.Id(), nil
}

// WriteFasta writes one sequence with its comment line, breaking the
// sequence into lines of 60 characters.
func WriteFasta(w io.Writer, cmmt string, s []byte) error {
	const c_per_line = 60
	if _, err := fmt.Fprintf(w, "%c %s\n", cmmtChar, cmmt); err != nil {
		return err
	}
	for ; len(s) > c_per_line; s = s[c_per_line:] {
		if _, err := fmt.Fprintf(w, "%s\n", s[:c_per_line]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", s)
	return err
}

// Reader for fasta format files.

package seq

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andrew-torda/simeds/pkg/white"
)

// An item is terminated by a newline if we are in a comment or a comment
// character ">" if we are in a sequence.
const (
	NL       = '\n'
	cmmtChar = '>'
)

type item struct {
	data     []byte
	complete bool
}

type lexer struct {
	ichan  chan item
	done   chan struct{}
	seqgrp *SeqGrp
	rdr    io.Reader
	cmmt   []byte // partial comment
	seq    []byte // partial sequence
	maxSeq int
	rdErr  error // only set by next(), read after ichan is closed
	err    error
}

const defaultReadSize = 64 * 1024

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking
func setFastaRdSize(i int) {
	if i <= 2 {
		panic("setFastaRdSize given buffer length of 2 or less")
	}
	rdsize = i
}

// send passes an item to the state functions. It gives up if they
// have stopped listening.
func (l *lexer) send(it item) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.ichan <- it:
		return true
	case <-l.done:
		return false
	}
}

// next reads from the input and sends items to channel, ichan.
// An item is terminated by term, or the end of the buffer.
// We start off looking for the first ">" and then toggle between
// newline (end of comment) and ">" (end of sequence).
func (l *lexer) next() {
	defer close(l.ichan)
	term := byte(cmmtChar)
	for {
		input := make([]byte, rdsize)
		n, err := l.rdr.Read(input)
		input = input[:n]
		for len(input) > 0 {
			var it item
			if ndx := bytes.IndexByte(input, term); ndx == -1 {
				// no terminator found, so just send back whatever we have
				it.data = input
				input = nil
			} else {
				it.data = input[:ndx]
				it.complete = true
				input = input[ndx+1:]
				if term == NL {
					term = cmmtChar
				} else {
					term = NL
				}
			}
			if !l.send(it) {
				return
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			l.rdErr = err
			return
		}
	}
}

type stateFn func(*lexer) stateFn

// gstart throws away anything before the first ">"
func gstart(l *lexer) stateFn {
	item, ok := <-l.ichan
	if !ok {
		return nil
	}
	if item.complete {
		return gcmmt
	}
	return gstart
}

// addSeq finishes the current record.
func (l *lexer) addSeq() stateFn {
	if len(l.seq) == 0 {
		l.err = fmt.Errorf("%w: zero length sequence after \"%s\"", ErrMalformedInput, trimStr(string(l.cmmt), 40))
		return nil
	}
	l.seqgrp.seqs = append(l.seqgrp.seqs, seq{cmmt: string(bytes.TrimSpace(l.cmmt)), seq: l.seq})
	l.cmmt, l.seq = nil, nil
	if l.maxSeq > 0 && len(l.seqgrp.seqs) >= l.maxSeq {
		return nil
	}
	return gcmmt
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	item, ok := <-l.ichan
	if !ok {
		l.addSeq()
		return nil
	}

	if white.Has(item.data) {
		white.Remove(&item.data)
	}
	l.seq = append(l.seq, item.data...)
	if item.complete {
		return l.addSeq()
	}
	return gseq
}

// We are reading a comment
func gcmmt(l *lexer) stateFn {
	item, ok := <-l.ichan
	if !ok {
		return l.addSeq() // a header with nothing after it
	}

	l.cmmt = append(l.cmmt, item.data...)
	if item.complete {
		return gseq
	}
	return gcmmt
}

// ReadFasta reads fasta formatted files. Anything before the first
// ">" is ignored.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	l := lexer{
		rdr:    rdr,
		ichan:  make(chan item, 2),
		done:   make(chan struct{}),
		seqgrp: seqgrp,
		maxSeq: s_opts.MaxSeq,
	}

	go l.next()
	for state := gstart; state != nil; {
		state = state(&l)
	}
	close(l.done)
	for range l.ichan { // let next() finish so rdErr is safe to look at
	}
	switch {
	case l.rdErr != nil:
		return fmt.Errorf("%w: %w", ErrMalformedInput, l.rdErr)
	case l.err != nil:
		return l.err
	case seqgrp.GetNSeq() == 0:
		return fmt.Errorf("%w: no sequences found", ErrMalformedInput)
	}
	return nil
}

// Package fastqio reads the 4-line FASTQ convention into records the
// core fastqdedup engine can index. It is deliberately thin: no
// multi-line FASTQ, no compression, no paired-end handling.
package fastqio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// Record is one FASTQ entry: an identifier (without the leading '@'),
// its sequence, and its quality string, in raw ASCII form.
type Record struct {
	ID       string
	Sequence []byte
	Quality  []byte
}

// Reader pulls 4-line FASTQ records off an io.Reader one at a time.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader wraps r in a Reader, sizing its internal scan buffer for
// long reads (up to 1MiB per line).
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{sc: sc}
}

// Next returns the next record, or io.EOF once the input is
// exhausted. A record whose sequence and quality lines differ in
// length, or whose 4-line framing is broken, is reported as an error.
func (r *Reader) Next() (Record, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Record{}, errors.Wrap(err, "fastqio: read header line")
		}
		return Record{}, io.EOF
	}
	header := r.sc.Text()
	if len(header) == 0 || header[0] != '@' {
		return Record{}, fmt.Errorf("fastqio: expected a '@' header line, got %q", header)
	}

	if !r.sc.Scan() {
		return Record{}, errors.New("fastqio: truncated record: missing sequence line")
	}
	seq := append([]byte(nil), r.sc.Bytes()...)

	if !r.sc.Scan() {
		return Record{}, errors.New("fastqio: truncated record: missing '+' separator line")
	}

	if !r.sc.Scan() {
		return Record{}, errors.New("fastqio: truncated record: missing quality line")
	}
	qual := append([]byte(nil), r.sc.Bytes()...)

	if len(qual) != len(seq) {
		return Record{}, fmt.Errorf("fastqio: sequence/quality length mismatch (%d vs %d) for %q", len(seq), len(qual), header[1:])
	}
	return Record{ID: header[1:], Sequence: seq, Quality: qual}, nil
}

// ToQSeq converts rec into a biogo linear.QSeq over the DNA alphabet,
// for interoperability with the wider bioinformatics ecosystem. offset
// is the ASCII value representing phred score 0.
func (rec Record) ToQSeq(offset byte) (*linear.QSeq, error) {
	letters := make([]alphabet.QLetter, len(rec.Sequence))
	for i, b := range rec.Sequence {
		if rec.Quality[i] < offset {
			return nil, fmt.Errorf("fastqio: quality byte %q below offset %d at position %d", rec.Quality[i], offset, i)
		}
		letters[i] = alphabet.QLetter{
			L: alphabet.Letter(b),
			Q: alphabet.Qphred(rec.Quality[i] - offset),
		}
	}
	return linear.NewQSeq(rec.ID, letters, alphabet.DNA, alphabet.Sanger), nil
}

// Package fasta reads multi-record FASTA files into the form
// internal/sequence needs to build a Store: one Record per ">" header,
// its letters, and the original input position of each letter.
//
// Parsing is deliberately minimal: no alphabet validation beyond what
// sequence.NewStore already coerces, no line-wrapping reconstruction
// beyond concatenation, no quality scores. Anything beyond "header,
// then sequence lines" is out of scope.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxInputBytes is the combined size ceiling across every record's
// bases, mirroring the original program's MAX_INPUT_SIZE guard against
// accidentally feeding it a whole-genome-scale file it was never sized
// for.
const MaxInputBytes = 1 << 30

// ErrInputTooLarge is returned when the combined size of every record's
// bases exceeds MaxInputBytes.
var ErrInputTooLarge = errors.New("fasta: total input size exceeds the 1GiB limit")

// ErrNoRecords is returned when a FASTA stream contains no ">" header.
var ErrNoRecords = errors.New("fasta: no records found")

// Record is one FASTA entry: its header name (without the leading ">")
// and its sequence letters with line breaks removed.
type Record struct {
	Name  string
	Bases []byte
}

// Positions returns the original-position vector for r: one entry per
// base, numbered 0..len(Bases)-1 in file order. This is the vector
// sequence.NewStoreWithPositions expects when letters are used as read,
// with no upstream projection.
func (r Record) Positions() []int64 {
	p := make([]int64, len(r.Bases))
	for i := range p {
		p[i] = int64(i)
	}
	return p
}

// Read parses every record in a FASTA stream. It returns ErrNoRecords
// for an empty or header-less stream, and ErrInputTooLarge if the
// records' combined base count exceeds MaxInputBytes.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	var cur *Record
	var total int
	var dataBeforeHeader bool

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if line[0] == '>' {
			records = append(records, Record{Name: strings.TrimSpace(line[1:])})
			cur = &records[len(records)-1]
			continue
		}
		if cur == nil {
			dataBeforeHeader = true
			continue
		}
		cur.Bases = append(cur.Bases, []byte(line)...)
		total += len(line)
		if total > MaxInputBytes {
			return nil, ErrInputTooLarge
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if dataBeforeHeader {
		return nil, fmt.Errorf("fasta: sequence data before any header")
	}
	return records, nil
}

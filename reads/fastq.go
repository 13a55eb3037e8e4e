// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reads

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/hlama/util"
	"github.com/pkg/errors"
)

const linesPerRecord = 4

var (
	// ErrShort is returned when a FASTQ record is truncated.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when the data is not FASTQ.
	ErrInvalid = errors.New("invalid FASTQ file")
	// ErrEmpty is returned when a FASTQ file has no records.
	ErrEmpty = errors.New("empty FASTQ file")
)

// Record is one FASTQ record: ID line, sequence, line 3 and qualities.
type Record struct {
	ID, Seq, Unk, Qual string
}

// readRecord reads the next record.  It requires the ID line to begin with
// "@", line 3 to begin with "+", and sequence and qualities to have the same
// length.  It returns io.EOF at a clean end of input.
func readRecord(scanner *bufio.Scanner) (Record, error) {
	var lines [linesPerRecord]string
	for i := range lines {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Record{}, err
			}
			if i == 0 {
				return Record{}, io.EOF
			}
			return Record{}, ErrShort
		}
		lines[i] = strings.TrimRight(scanner.Text(), "\r")
	}
	r := Record{ID: lines[0], Seq: lines[1], Unk: lines[2], Qual: lines[3]}
	if !strings.HasPrefix(r.ID, "@") || !strings.HasPrefix(r.Unk, "+") || len(r.Seq) != len(r.Qual) {
		return Record{}, ErrInvalid
	}
	return r, nil
}

// ReadFirst returns the first record in r.
func ReadFirst(r io.Reader) (Record, error) {
	rec, err := readRecord(bufio.NewScanner(r))
	if err == io.EOF {
		return Record{}, ErrEmpty
	}
	return rec, err
}

// Sniff checks that the file at path, plain or gzip-compressed, starts with a
// well-formed FASTQ record.
func Sniff(ctx context.Context, path string) (err error) {
	in, err := util.OpenText(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	if _, err := ReadFirst(in); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	return nil
}

// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package util holds small I/O helpers shared by the hlama packages.
package util

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
)

// TextFile is a line-oriented input opened through grailbio/base/file.
// Gzip-compressed content is detected from its magic bytes and decompressed
// transparently, so "calls.txt" and "calls.txt.gz" read the same.
type TextFile struct {
	in file.File
	gz *gzip.Reader
	r  io.Reader
}

// OpenText opens path for reading.
func OpenText(ctx context.Context, path string) (*TextFile, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	t := &TextFile{in: in}
	br := bufio.NewReaderSize(in.Reader(ctx), 64<<10)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		if t.gz, err = gzip.NewReader(br); err != nil {
			_ = in.Close(ctx)
			return nil, errors.E(err, "gunzip", path)
		}
		t.r = t.gz
	} else {
		// Short or empty files are read as is.
		t.r = br
	}
	return t, nil
}

// Read implements io.Reader.
func (t *TextFile) Read(p []byte) (int, error) { return t.r.Read(p) }

// Close releases the underlying file.
func (t *TextFile) Close(ctx context.Context) error {
	var err errors.Once
	if t.gz != nil {
		err.Set(t.gz.Close())
	}
	err.Set(t.in.Close(ctx))
	return err.Err()
}

// IsNotExist reports whether err says that a file does not exist.
func IsNotExist(err error) bool {
	return err != nil && (errors.Is(errors.NotExist, err) || os.IsNotExist(err))
}

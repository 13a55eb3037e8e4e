// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package relation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/hlama/util"
)

// Graph is the common view of a pedigree and a cohort: a list of individuals,
// each with its read files.
type Graph interface {
	// Names lists the individuals in table order.
	Names() []string
	// Files returns the read files of the named individual.
	Files(name string) []string
}

// scanTable calls fn with the fields of every non-blank, non-comment line.
func scanTable(r io.Reader, path string, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, strings.Fields(text)); err != nil {
			return errors.E(errors.Invalid, fmt.Sprintf("%s:%d:", path, line), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.E(err, "read", path)
	}
	return nil
}

// loadTable opens path, which may be gzip-compressed, and passes it to read.
func loadTable(ctx context.Context, path string, read func(r io.Reader) error) (err error) {
	in, err := util.OpenText(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	return read(in)
}

// splitFiles flattens comma-separated path lists, dropping empty entries.
func splitFiles(data []string) []string {
	var files []string
	for _, d := range data {
		for _, f := range strings.Split(d, ",") {
			if f != "" {
				files = append(files, f)
			}
		}
	}
	return files
}

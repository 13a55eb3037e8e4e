// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// OK is written in place of a zero count or an empty flag list.
const OK = "OK"

// FormatCount renders a mismatch count, "OK" for zero.
func FormatCount(n int) string {
	if n == 0 {
		return OK
	}
	return strconv.Itoa(n)
}

// FormatFlags joins flags with commas, "OK" for none.
func FormatFlags(flags []string) string {
	if len(flags) == 0 {
		return OK
	}
	return strings.Join(flags, ",")
}

// WritePairs writes a cohort report.
func WritePairs(w io.Writer, rows []PairRow) error {
	out := tsv.NewWriter(w)
	for _, row := range rows {
		out.WriteString(row.Sample)
		out.WriteString(FormatCount(row.MM2))
		out.WriteString(FormatCount(row.MM4))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

// WritePedigree writes a pedigree report.
func WritePedigree(w io.Writer, rows []PedigreeRow) error {
	out := tsv.NewWriter(w)
	for _, row := range rows {
		out.WriteString(row.Index)
		out.WriteString(strconv.Itoa(row.NumParents))
		out.WriteString(FormatCount(row.MM2))
		out.WriteString(FormatCount(row.MM4))
		out.WriteString(FormatFlags(row.Flags))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

// WriteFile creates path and passes its writer to write.  An empty path or
// "-" writes to stdout.
func WriteFile(ctx context.Context, path string, write func(w io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	return write(out.Writer(ctx))
}

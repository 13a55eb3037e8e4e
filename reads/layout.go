// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package reads checks the read files listed for each individual before they
// are handed to the HLA typer: that they exist, that they look like FASTQ, and
// whether they form single-end or paired-end data.
package reads

import (
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Mode is the read layout of an individual.
type Mode int

const (
	// SingleEnd means only first-read files were given.
	SingleEnd Mode = iota
	// PairedEnd means every first-read file has a second-read mate.
	PairedEnd
)

func (m Mode) String() string {
	if m == PairedEnd {
		return "paired-end"
	}
	return "single-end"
}

// readPatterns match the base names of read files.  They are tried in order,
// so "x_10_R2.fq.gz" is a second-read file even though it also matches "*_1*".
var readPatterns = []struct {
	read     int
	patterns []string
}{
	{1, []string{"*_R1_*.fq.gz", "*_R1_*.fastq.gz", "*_R1.fq.gz", "*_R1.fastq.gz",
		"*_R1_*.fq", "*_R1_*.fastq", "*_R1.fq", "*_R1.fastq"}},
	{2, []string{"*_R2_*.fq.gz", "*_R2_*.fastq.gz", "*_R2.fq.gz", "*_R2.fastq.gz",
		"*_R2_*.fq", "*_R2_*.fastq", "*_R2.fq", "*_R2.fastq"}},
	{1, []string{"*_1*.fastq.gz", "*_1*.fq.gz", "*_1*.fastq", "*_1*.fq"}},
	{2, []string{"*_2*.fastq.gz", "*_2*.fq.gz", "*_2*.fastq", "*_2*.fq"}},
}

// Read returns 1 or 2 if the base name of p is a first- or second-read file,
// and 0 if it is neither.
func Read(p string) int {
	name := path.Base(strings.Replace(p, "\\", "/", -1))
	for _, rp := range readPatterns {
		for _, pattern := range rp.patterns {
			// The patterns are well-formed, so Match cannot fail.
			if ok, _ := path.Match(pattern, name); ok {
				return rp.read
			}
		}
	}
	return 0
}

// DetectMode determines the layout from file names.  It is an error to have
// second-read files without first-read files, or different numbers of them.
// Files matching neither pattern set are ignored.
func DetectMode(paths []string) (Mode, error) {
	var n1, n2 int
	for _, p := range paths {
		switch Read(p) {
		case 1:
			n1++
		case 2:
			n2++
		}
	}
	switch {
	case n2 > 0 && n1 == 0:
		return SingleEnd, errors.Errorf("have seen only R2 in %s", strings.Join(paths, ","))
	case n2 > 0 && n1 != n2:
		return SingleEnd, errors.Errorf("have seen different number of R1 (%d) and R2 (%d) reads in %s",
			n1, n2, strings.Join(paths, ","))
	case n2 > 0:
		return PairedEnd, nil
	}
	return SingleEnd, nil
}

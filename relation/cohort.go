// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package relation

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// SeqType is the sequencing assay of a sample.  The empty value means the
// cohort line did not name one.
type SeqType string

// Known sequencing types.  A fourth cohort column is read as a SeqType only if
// it matches one of these, ignoring case.
var seqTypes = []SeqType{"WGS", "WES", "WXS", "PANEL", "RNA", "DNA"}

// ParseSeqType returns the canonical (upper-case) form of s if it is a known
// sequencing type.
func ParseSeqType(s string) (SeqType, bool) {
	for _, t := range seqTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

const cohortColumns = 3

// Donor is one line of a cohort file: a sample and the reference sample it is
// checked against.
type Donor struct {
	Donor     string
	Sample    string
	Reference string
	SeqType   SeqType
	// Files are the read files listed in the data columns.
	Files []string
}

// ParseDonor parses the fields of one cohort line.
func ParseDonor(fields []string) (Donor, error) {
	if len(fields) < cohortColumns {
		return Donor{}, fmt.Errorf("cohort line needs at least %d fields, got %d: %q", cohortColumns, len(fields), fields)
	}
	d := Donor{
		Donor:     fields[0],
		Sample:    fields[1],
		Reference: fields[2],
	}
	data := fields[cohortColumns:]
	if len(data) > 0 {
		if t, ok := ParseSeqType(data[0]); ok {
			d.SeqType = t
			data = data[1:]
		}
	}
	d.Files = splitFiles(data)
	return d, nil
}

// IsReference reports whether d is its own reference, e.g., the normal sample
// of a tumor/normal pair.
func (d Donor) IsReference() bool { return d.Sample == d.Reference }

func (d Donor) String() string {
	return fmt.Sprintf("Donor(%s, %s, %s)", d.Donor, d.Sample, d.Reference)
}

// Cohort is a parsed cohort file.  Donors are kept in file order.
type Cohort struct {
	Donors   []Donor
	bySample map[string]int
}

// NewCohort indexes donors by sample name, which must be unique.
func NewCohort(donors []Donor) (*Cohort, error) {
	c := &Cohort{Donors: donors, bySample: make(map[string]int, len(donors))}
	for i, d := range donors {
		if _, ok := c.bySample[d.Sample]; ok {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("duplicate cohort sample %q", d.Sample))
		}
		c.bySample[d.Sample] = i
	}
	return c, nil
}

// ReadCohort parses a cohort from r.  Path is used in error messages.
func ReadCohort(r io.Reader, path string) (*Cohort, error) {
	var donors []Donor
	err := scanTable(r, path, func(_ int, fields []string) error {
		d, err := ParseDonor(fields)
		if err != nil {
			return err
		}
		donors = append(donors, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewCohort(donors)
}

// LoadCohort reads a cohort file.
func LoadCohort(ctx context.Context, path string) (c *Cohort, err error) {
	err = loadTable(ctx, path, func(r io.Reader) error {
		c, err = ReadCohort(r, path)
		return err
	})
	return c, err
}

// Sample looks up a donor line by sample name.
func (c *Cohort) Sample(name string) (Donor, bool) {
	i, ok := c.bySample[name]
	if !ok {
		return Donor{}, false
	}
	return c.Donors[i], true
}

// Comparisons returns the donors that are compared against a different
// reference sample, in file order.
func (c *Cohort) Comparisons() []Donor {
	var out []Donor
	for _, d := range c.Donors {
		if !d.IsReference() {
			out = append(out, d)
		}
	}
	return out
}

// Names implements Graph.
func (c *Cohort) Names() []string {
	names := make([]string, len(c.Donors))
	for i, d := range c.Donors {
		names[i] = d.Sample
	}
	return names
}

// References returns the distinct reference samples in first-use order.
// References need not have a line of their own.
func (c *Cohort) References() []string {
	var refs []string
	seen := make(map[string]bool)
	for _, d := range c.Donors {
		if !seen[d.Reference] {
			seen[d.Reference] = true
			refs = append(refs, d.Reference)
		}
	}
	return refs
}

// Files implements Graph.
func (c *Cohort) Files(name string) []string {
	d, _ := c.Sample(name)
	return d.Files
}

// Write prints the donor, sample and reference columns, tab-separated.
func (c *Cohort) Write(w io.Writer) error {
	out := tsv.NewWriter(w)
	for _, d := range c.Donors {
		out.WriteString(d.Donor)
		out.WriteString(d.Sample)
		out.WriteString(d.Reference)
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hla

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/grailbio/base/log"
)

// Gene is one of the canonical HLA class I genes.
type Gene uint8

const (
	// GeneA is HLA-A.
	GeneA Gene = iota
	// GeneB is HLA-B.
	GeneB
	// GeneC is HLA-C.
	GeneC
	// NumGenes is the number of canonical genes.
	NumGenes = 3
)

// Genes lists the canonical genes in report order.
var Genes = [NumGenes]Gene{GeneA, GeneB, GeneC}

var geneNames = [NumGenes]string{"A", "B", "C"}

// String returns the gene name without the "HLA-" prefix.
func (g Gene) String() string {
	if int(g) < NumGenes {
		return geneNames[g]
	}
	return fmt.Sprintf("Gene(%d)", int(g))
}

// ParseGene converts "A", "B" or "C" into a Gene.
func ParseGene(s string) (Gene, bool) {
	for i, name := range geneNames {
		if s == name {
			return Gene(i), true
		}
	}
	return 0, false
}

// Precision is the resolution at which alleles are compared.  The value is the
// number of digits retained.
type Precision int

const (
	// GeneOnly compares the gene name only.
	GeneOnly Precision = 0
	// TwoDigit compares gene and allele group, e.g. "A*02".
	TwoDigit Precision = 2
	// FourDigit compares gene, allele group and protein, e.g. "A*02:01".
	FourDigit Precision = 4
)

// MalformedAlleleError is returned when a string is not of the form
// [HLA-]GENE[*group[:subtype]].  Path and Line are set when the string was read
// from a call file.
type MalformedAlleleError struct {
	Text string
	Path string
	Line int
}

func (e *MalformedAlleleError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: malformed HLA allele %q", e.Path, e.Line, e.Text)
	}
	return fmt.Sprintf("malformed HLA allele %q", e.Text)
}

// IsMalformed reports whether err is, or wraps, a *MalformedAlleleError.
func IsMalformed(err error) bool {
	var e *MalformedAlleleError
	return errors.As(err, &e)
}

// Allele is a parsed allele call.  The digit fields hold the digits as written
// in the input, "" when absent.  Subtype is set only if Group is set.
type Allele struct {
	Gene    Gene
	Group   string
	Subtype string
}

// alleleRE matches a prefix of the input.  Fields beyond the second (e.g. the
// synonymous and non-coding fields of "A*02:01:01:02") and expression
// suffixes are ignored.
var alleleRE = regexp.MustCompile(`^(?:HLA-)?([A-Za-z]+)(?:\*(\d+)(?::(\d+))?)?`)

// Parse parses an allele call such as "HLA-A*02:01", "B*15" or "C".
func Parse(text string) (Allele, error) {
	m := alleleRE.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Allele{}, &MalformedAlleleError{Text: text}
	}
	gene, ok := ParseGene(m[1])
	if !ok {
		return Allele{}, &MalformedAlleleError{Text: text}
	}
	return Allele{Gene: gene, Group: m[2], Subtype: m[3]}, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(text string) Allele {
	a, err := Parse(text)
	if err != nil {
		log.Panicf("%v", err)
	}
	return a
}

// effective returns the highest precision not exceeding p for which a has
// digits.
func (a Allele) effective(p Precision) Precision {
	switch p {
	case GeneOnly, TwoDigit, FourDigit:
	default:
		log.Panicf("hla: invalid precision %d", p)
	}
	if p == FourDigit && a.Subtype == "" {
		p = TwoDigit
	}
	if p == TwoDigit && a.Group == "" {
		p = GeneOnly
	}
	return p
}

// PrecisionString renders a truncated to precision p.  When a lacks the digits
// for p, the highest available precision is used instead; digits are never
// invented.  It panics if p is not one of GeneOnly, TwoDigit, FourDigit.
func (a Allele) PrecisionString(p Precision) string {
	switch a.effective(p) {
	case FourDigit:
		return "HLA-" + a.Gene.String() + "*" + a.Group + ":" + a.Subtype
	case TwoDigit:
		return "HLA-" + a.Gene.String() + "*" + a.Group
	default:
		return "HLA-" + a.Gene.String()
	}
}

// String renders a at its full precision.
func (a Allele) String() string {
	return a.PrecisionString(FourDigit)
}

// EqualAt reports whether a and b render identically at precision p.
func (a Allele) EqualAt(b Allele, p Precision) bool {
	return a.PrecisionString(p) == b.PrecisionString(p)
}

// Less orders alleles by gene, then allele group, then subtype.  An absent
// field sorts before any present one.
func (a Allele) Less(b Allele) bool {
	if a.Gene != b.Gene {
		return a.Gene < b.Gene
	}
	if c := compareDigits(a.Group, b.Group); c != 0 {
		return c < 0
	}
	return compareDigits(a.Subtype, b.Subtype) < 0
}

// compareDigits compares two digit strings numerically, "" being the smallest.
// Numerically equal strings ("2" and "02") are ordered lexically so that the
// order stays total.
func compareDigits(x, y string) int {
	switch {
	case x == y:
		return 0
	case x == "":
		return -1
	case y == "":
		return 1
	}
	xv, errx := strconv.ParseUint(x, 10, 64)
	yv, erry := strconv.ParseUint(y, 10, 64)
	if errx == nil && erry == nil && xv != yv {
		if xv < yv {
			return -1
		}
		return 1
	}
	if x < y {
		return -1
	}
	return 1
}

// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hla

import (
	"bufio"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/hlama/util"
)

// CallSet holds the calls of one individual, sorted and partitioned by gene.
// It must not be modified after construction.
type CallSet struct {
	all    []Allele
	byGene [NumGenes][]Allele
}

// NewCallSet builds a CallSet from calls given in any order.
func NewCallSet(calls []Allele) *CallSet {
	s := &CallSet{all: append([]Allele(nil), calls...)}
	sort.SliceStable(s.all, func(i, j int) bool { return s.all[i].Less(s.all[j]) })
	for _, a := range s.all {
		s.byGene[a.Gene] = append(s.byGene[a.Gene], a)
	}
	return s
}

// ParseCallSet parses each string with Parse.
func ParseCallSet(calls ...string) (*CallSet, error) {
	alleles := make([]Allele, 0, len(calls))
	for _, c := range calls {
		a, err := Parse(c)
		if err != nil {
			return nil, err
		}
		alleles = append(alleles, a)
	}
	return NewCallSet(alleles), nil
}

// MustParseCallSet is like ParseCallSet, but panics on error.
func MustParseCallSet(calls ...string) *CallSet {
	alleles := make([]Allele, len(calls))
	for i, c := range calls {
		alleles[i] = MustParse(c)
	}
	return NewCallSet(alleles)
}

// All returns every call in sorted order.
func (s *CallSet) All() []Allele { return s.all }

// Gene returns the sorted calls for gene g.
func (s *CallSet) Gene(g Gene) []Allele { return s.byGene[g] }

// Len returns the number of calls.
func (s *CallSet) Len() int { return len(s.all) }

// PrecisionSet returns the distinct precision strings of the calls for gene g.
func (s *CallSet) PrecisionSet(g Gene, p Precision) map[string]struct{} {
	set := make(map[string]struct{}, len(s.byGene[g]))
	for _, a := range s.byGene[g] {
		set[a.PrecisionString(p)] = struct{}{}
	}
	return set
}

// Strings renders all calls at full precision.
func (s *CallSet) Strings() []string {
	out := make([]string, len(s.all))
	for i, a := range s.all {
		out[i] = a.String()
	}
	return out
}

// ReadCallSet reads one call per line from r.  Blank lines are skipped.  Path
// is used in error messages only.
func ReadCallSet(r io.Reader, path string) (*CallSet, error) {
	var (
		calls   []Allele
		scanner = bufio.NewScanner(r)
		line    int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		a, err := Parse(text)
		if err != nil {
			return nil, &MalformedAlleleError{Text: text, Path: path, Line: line}
		}
		calls = append(calls, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "read", path)
	}
	return NewCallSet(calls), nil
}

// LoadCallSet reads a call file, which may be gzip-compressed.
func LoadCallSet(ctx context.Context, path string) (s *CallSet, err error) {
	in, err := util.OpenText(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	return ReadCallSet(in, path)
}

// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"github.com/grailbio/base/log"
	"github.com/grailbio/hlama/consistency"
	"github.com/grailbio/hlama/hla"
	"github.com/grailbio/hlama/relation"
)

// Flag names for identity warnings.
const (
	FlagIdentityFather = "identity-father"
	FlagIdentityMother = "identity-mother"
)

// checkPrecisions are the precisions every report line is computed at.
var checkPrecisions = []hla.Precision{hla.TwoDigit, hla.FourDigit}

// PairRow is one line of a cohort report.
type PairRow struct {
	Sample string
	MM2    int
	MM4    int
}

// PedigreeRow is one line of a pedigree report.
type PedigreeRow struct {
	Index      string
	NumParents int
	MM2        int
	MM4        int
	// Flags are warnings in the form "WARN:<flag>:<digits>".
	Flags []string
}

// SubjectError is a failure to check one sample or index individual.  Other
// subjects of the run are unaffected.
type SubjectError struct {
	Subject string
	Err     error
}

func (e *SubjectError) Error() string {
	return fmt.Sprintf("%s: %v", e.Subject, e.Err)
}

// Unwrap returns the underlying error.
func (e *SubjectError) Unwrap() error { return e.Err }

// warning formats an identity flag.
func warning(flag string, p hla.Precision) string {
	return fmt.Sprintf("WARN:%s:%d", flag, int(p))
}

// subjectCalls returns the subject's own calls, which must exist.
func subjectCalls(store *CallStore, name string) (*hla.CallSet, error) {
	calls, err := store.Get(name)
	if err != nil {
		return nil, err
	}
	if calls == nil {
		return nil, fmt.Errorf("no HLA calls for %s", name)
	}
	return calls, nil
}

// Pairs compares every non-reference sample of the cohort with its reference
// sample.  Rows are in cohort order; samples that cannot be checked are
// reported in the returned errors instead.
func Pairs(cohort *relation.Cohort, store *CallStore) ([]PairRow, []*SubjectError) {
	var (
		rows []PairRow
		errs []*SubjectError
	)
	for _, d := range cohort.Comparisons() {
		sample, err := subjectCalls(store, d.Sample)
		if err != nil {
			errs = append(errs, &SubjectError{Subject: d.Sample, Err: err})
			continue
		}
		ref, err := store.Get(d.Reference)
		if err != nil {
			errs = append(errs, &SubjectError{Subject: d.Sample, Err: err})
			continue
		}
		if ref == nil {
			log.Error.Printf("%s: no HLA calls for reference %s, reporting OK without a comparison", d.Sample, d.Reference)
		}
		rows = append(rows, PairRow{
			Sample: d.Sample,
			MM2:    consistency.CallSetMismatches(hla.TwoDigit, ref, sample),
			MM4:    consistency.CallSetMismatches(hla.FourDigit, ref, sample),
		})
	}
	return rows, errs
}

// parentCalls returns the calls of a parent, or nil if the parent is unknown
// or has no calls.
func parentCalls(store *CallStore, index, parent string) (*hla.CallSet, error) {
	if parent == relation.NoParent {
		return nil, nil
	}
	calls, err := store.Get(parent)
	if err != nil {
		return nil, err
	}
	if calls == nil {
		log.Printf("%s: no HLA calls for parent %s", index, parent)
	}
	return calls, nil
}

// Pedigree checks every index member of the pedigree against its parents.
// Rows are in pedigree order; members that cannot be checked are reported in
// the returned errors instead.
func Pedigree(pedigree *relation.Pedigree, store *CallStore) ([]PedigreeRow, []*SubjectError) {
	var (
		rows []PedigreeRow
		errs []*SubjectError
	)
	for _, m := range pedigree.Index() {
		row, err := pedigreeRow(m, store)
		if err != nil {
			errs = append(errs, &SubjectError{Subject: m.Name, Err: err})
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs
}

func pedigreeRow(m relation.Member, store *CallStore) (PedigreeRow, error) {
	index, err := subjectCalls(store, m.Name)
	if err != nil {
		return PedigreeRow{}, err
	}
	father, err := parentCalls(store, m.Name, m.Father)
	if err != nil {
		return PedigreeRow{}, err
	}
	mother, err := parentCalls(store, m.Name, m.Mother)
	if err != nil {
		return PedigreeRow{}, err
	}
	row := PedigreeRow{
		Index:      m.Name,
		NumParents: m.NumParents(),
		MM2:        consistency.TrioMismatches(hla.TwoDigit, index, father, mother),
		MM4:        consistency.TrioMismatches(hla.FourDigit, index, father, mother),
	}
	for _, p := range checkPrecisions {
		if consistency.Identical(p, index, father) {
			row.Flags = append(row.Flags, warning(FlagIdentityFather, p))
		}
		if consistency.Identical(p, index, mother) {
			row.Flags = append(row.Flags, warning(FlagIdentityMother, p))
		}
	}
	return row, nil
}

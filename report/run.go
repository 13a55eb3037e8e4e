// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hlama/relation"
)

// subjectsFailed logs each subject error and summarizes them.
func subjectsFailed(errs []*SubjectError) error {
	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		log.Error.Printf("%v", e)
	}
	return errors.E(errors.Invalid, fmt.Sprintf("could not check %d subject(s); first: %v", len(errs), errs[0]))
}

// CheckPairs reads the cohort at cohortPath and the calls of its samples, and
// writes the cohort report to outPath.  The report is written even if some
// samples fail; their errors are logged and summarized in the returned error.
func CheckPairs(ctx context.Context, cohortPath, outPath string, opts Opts) error {
	log.Printf("Loading tumor/normal pairs from %s...", cohortPath)
	cohort, err := relation.LoadCohort(ctx, cohortPath)
	if err != nil {
		return err
	}
	for _, d := range cohort.Donors {
		log.Debug.Printf("%v", d)
	}
	names := append(cohort.Names(), cohort.References()...)
	if err := opts.checkOverrides(names); err != nil {
		return err
	}
	log.Printf("Loading HLA calls...")
	store, err := LoadCalls(ctx, names, opts)
	if err != nil {
		return err
	}
	log.Printf("Checking for consistency...")
	rows, errs := Pairs(cohort, store)
	if err := WriteFile(ctx, outPath, func(w io.Writer) error { return WritePairs(w, rows) }); err != nil {
		return err
	}
	return subjectsFailed(errs)
}

// CheckPedigree reads the pedigree at pedigreePath and the calls of its
// members, and writes the pedigree report to outPath.  The report is written
// even if some members fail; their errors are logged and summarized in the
// returned error.
func CheckPedigree(ctx context.Context, pedigreePath, outPath string, opts Opts) error {
	log.Printf("Parsing pedigree from %s...", pedigreePath)
	pedigree, err := relation.LoadPedigree(ctx, pedigreePath)
	if err != nil {
		return err
	}
	if log.At(log.Debug) {
		if err := pedigree.Write(os.Stderr); err != nil {
			return err
		}
	}
	if err := opts.checkOverrides(pedigree.Names()); err != nil {
		return err
	}
	log.Printf("Loading HLA calls...")
	store, err := LoadCalls(ctx, pedigree.Names(), opts)
	if err != nil {
		return err
	}
	log.Printf("Checking for consistency...")
	rows, errs := Pedigree(pedigree, store)
	if err := WriteFile(ctx, outPath, func(w io.Writer) error { return WritePedigree(w, rows) }); err != nil {
		return err
	}
	return subjectsFailed(errs)
}

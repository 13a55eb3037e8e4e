// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package consistency

import "github.com/grailbio/hlama/hla"

// counts maps precision strings to their multiplicity.
type counts map[string]int

func countCalls(p hla.Precision, calls []hla.Allele) counts {
	c := make(counts, len(calls))
	for _, a := range calls {
		c[a.PrecisionString(p)]++
	}
	return c
}

// Mismatches returns the number of reference calls that are not matched by the
// sample calls at precision p, counting multiplicity: a call present twice in
// reference and once in sample costs one.  Calls present only in sample are
// not counted.
func Mismatches(p hla.Precision, reference, sample []hla.Allele) int {
	ref := countCalls(p, reference)
	cmp := countCalls(p, sample)
	n := 0
	for key, nref := range ref {
		if d := nref - cmp[key]; d > 0 {
			n += d
		}
	}
	return n
}

// CallSetMismatches is Mismatches over all calls of two call sets.  A nil
// reference yields zero.  A nil sample counts every reference call.
func CallSetMismatches(p hla.Precision, reference, sample *hla.CallSet) int {
	if reference == nil {
		return 0
	}
	var calls []hla.Allele
	if sample != nil {
		calls = sample.All()
	}
	return Mismatches(p, reference.All(), calls)
}

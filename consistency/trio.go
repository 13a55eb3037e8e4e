// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package consistency

import "github.com/grailbio/hlama/hla"

type stringSet map[string]struct{}

func (s stringSet) intersects(o stringSet) bool {
	for k := range s {
		if _, ok := o[k]; ok {
			return true
		}
	}
	return false
}

// explained counts the members of s found in a or b.
func (s stringSet) explained(a, b stringSet) int {
	n := 0
	for k := range s {
		_, inA := a[k]
		_, inB := b[k]
		if inA || inB {
			n++
		}
	}
	return n
}

func (s stringSet) equal(o stringSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if _, ok := o[k]; !ok {
			return false
		}
	}
	return true
}

func geneSet(s *hla.CallSet, g hla.Gene, p hla.Precision) stringSet {
	if s == nil {
		return stringSet{}
	}
	return s.PrecisionSet(g, p)
}

// TrioMismatches returns the number of the index's alleles at genes A, B and C
// that cannot be inherited from father and mother at precision p.  A nil
// parent has no calls available.  Duplicate calls are collapsed.
//
// With both parents, each gene costs at most 2: an index call set that misses
// one parent costs at least 1, a homozygous (single distinct) call missing
// either parent costs 2, and otherwise the cost is 2 minus the number of index
// alleles found in either parent.  With a single parent, a gene costs 1 when
// the index shares no allele with it.  Without parents nothing can be
// asserted and the result is 0.
func TrioMismatches(p hla.Precision, index, father, mother *hla.CallSet) int {
	total := 0
	for _, g := range hla.Genes {
		total += TrioGeneMismatches(p, g, index, father, mother)
	}
	return total
}

// TrioGeneMismatches is the contribution of gene g to TrioMismatches.
func TrioGeneMismatches(p hla.Precision, g hla.Gene, index, father, mother *hla.CallSet) int {
	indexSet := geneSet(index, g, p)
	fatherSet := geneSet(father, g, p)
	motherSet := geneSet(mother, g, p)
	switch {
	case father != nil && mother != nil:
		summand := 0
		if !indexSet.intersects(fatherSet) {
			summand = 1
		}
		if !indexSet.intersects(motherSet) && summand < 1 {
			summand = 1
		}
		if len(indexSet) == 1 {
			if !indexSet.intersects(fatherSet) || !indexSet.intersects(motherSet) {
				summand = 2
			}
			return summand
		}
		if summand = 2 - indexSet.explained(fatherSet, motherSet); summand < 0 {
			// More than two distinct calls at one gene.
			summand = 0
		}
		return summand
	case father != nil || mother != nil:
		// The father's set is used unless it is empty at this gene.  A known
		// father without calls at g thus falls back to the (empty) mother set.
		either := fatherSet
		if len(either) == 0 {
			either = motherSet
		}
		if !indexSet.intersects(either) {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Identical reports whether lhs and rhs carry the same distinct calls at
// genes A, B and C at precision p.  It is false if either side is nil.
func Identical(p hla.Precision, lhs, rhs *hla.CallSet) bool {
	if lhs == nil || rhs == nil {
		return false
	}
	for _, g := range hla.Genes {
		if !geneSet(lhs, g, p).equal(geneSet(rhs, g, p)) {
			return false
		}
	}
	return true
}

// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package consistency_test

import (
	"testing"

	"github.com/grailbio/hlama/consistency"
	"github.com/grailbio/hlama/hla"
	"github.com/stretchr/testify/assert"
)

func calls(s ...string) []hla.Allele {
	return hla.MustParseCallSet(s...).All()
}

var precisions = []hla.Precision{hla.TwoDigit, hla.FourDigit}

func TestMismatchesReflexive(t *testing.T) {
	for _, ref := range [][]hla.Allele{
		nil,
		calls("A*02:01"),
		calls("A*02:01", "A*02:01", "B*15:01", "C*04:01"),
		calls("A*02:01", "A*02:74", "B*15:01", "B*53:01", "C*04:01", "C*07:02"),
	} {
		for _, p := range precisions {
			assert.Equal(t, 0, consistency.Mismatches(p, ref, ref))
		}
	}
}

func TestMismatchesEmptySample(t *testing.T) {
	ref := calls("A*02:01", "A*02:01", "B*15:01", "C*04")
	for _, p := range precisions {
		assert.Equal(t, len(ref), consistency.Mismatches(p, ref, nil))
	}
}

func TestMismatches(t *testing.T) {
	tests := []struct {
		ref, sample  []string
		want2, want4 int
	}{
		// Loss of one copy of a homozygous call.
		{[]string{"A*02:01", "A*02:01"}, []string{"A*02:01"}, 1, 1},
		// Gains are not counted.
		{[]string{"A*02:01"}, []string{"A*02:01", "A*03:01", "B*07:02"}, 0, 0},
		// Same group, different protein.
		{[]string{"A*02:01", "B*15:01"}, []string{"A*02:74", "B*15:01"}, 0, 1},
		// 2-digit A*02 and A*02:74 agree at 2 digits; 4-digit falls back.
		{[]string{"A*02", "C*07:02"}, []string{"A*02:74", "C*04:01"}, 1, 2},
		{[]string{"A*01:01", "A*02:01", "B*08:01"}, []string{"A*03:01", "A*11:01"}, 3, 3},
	}
	for _, test := range tests {
		ref, sample := calls(test.ref...), calls(test.sample...)
		assert.Equal(t, test.want2, consistency.Mismatches(hla.TwoDigit, ref, sample), "%v %v", test.ref, test.sample)
		assert.Equal(t, test.want4, consistency.Mismatches(hla.FourDigit, ref, sample), "%v %v", test.ref, test.sample)
	}
}

func TestCallSetMismatches(t *testing.T) {
	ref := hla.MustParseCallSet("A*02:01", "B*15:01")
	assert.Equal(t, 0, consistency.CallSetMismatches(hla.FourDigit, nil, ref))
	assert.Equal(t, 2, consistency.CallSetMismatches(hla.FourDigit, ref, nil))
	assert.Equal(t, 0, consistency.CallSetMismatches(hla.FourDigit, ref, ref))
}

func TestTrioGeneA(t *testing.T) {
	tests := []struct {
		name                  string
		index, father, mother []string
		want                  int
	}{
		{"one allele from each parent",
			[]string{"A*01:01", "A*02:01"}, []string{"A*01:01", "A*03:01"}, []string{"A*02:01", "A*05:01"}, 0},
		{"homozygous matching neither",
			[]string{"A*01:01"}, []string{"A*03:01"}, []string{"A*05:01"}, 2},
		{"homozygous matching father only",
			[]string{"A*01:01"}, []string{"A*01:01"}, []string{"A*05:01"}, 2},
		{"homozygous matching both",
			[]string{"A*01:01", "A*01:01"}, []string{"A*01:01", "A*03:01"}, []string{"A*01:01", "A*05:01"}, 0},
		{"heterozygous one allele unexplained",
			[]string{"A*01:01", "A*24:02"}, []string{"A*01:01", "A*03:01"}, []string{"A*01:01", "A*05:01"}, 1},
		{"heterozygous both from one parent",
			[]string{"A*01:01", "A*03:01"}, []string{"A*01:01", "A*03:01"}, []string{"A*02:01", "A*05:01"}, 0},
		{"heterozygous nothing explained",
			[]string{"A*11:01", "A*24:02"}, []string{"A*01:01", "A*03:01"}, []string{"A*02:01", "A*05:01"}, 2},
		{"index without calls",
			nil, []string{"A*01:01"}, []string{"A*02:01"}, 2},
		{"three calls at one gene",
			[]string{"A*01:01", "A*02:01", "A*03:01"}, []string{"A*01:01", "A*03:01"}, []string{"A*02:01"}, 0},
	}
	for _, test := range tests {
		index := hla.MustParseCallSet(test.index...)
		father := hla.MustParseCallSet(test.father...)
		mother := hla.MustParseCallSet(test.mother...)
		assert.Equal(t, test.want, consistency.TrioGeneMismatches(hla.FourDigit, hla.GeneA, index, father, mother), test.name)
	}
}

func TestTrioSingleParent(t *testing.T) {
	index := hla.MustParseCallSet("A*01:01", "A*02:01", "B*07:02", "B*08:01", "C*01:06", "C*02:02")
	parent := hla.MustParseCallSet("A*01:01", "A*68:02", "B*44:02", "B*44:03", "C*01:06", "C*12:16")
	assert.Equal(t, 1, consistency.TrioMismatches(hla.FourDigit, index, parent, nil))
	assert.Equal(t, 1, consistency.TrioMismatches(hla.FourDigit, index, nil, parent))
	assert.Equal(t, 1, consistency.TrioMismatches(hla.TwoDigit, index, nil, parent))

	// A known father without any B call falls back to the absent mother.
	noB := hla.MustParseCallSet("A*01:01", "C*01:06")
	assert.Equal(t, 1, consistency.TrioMismatches(hla.FourDigit, index, noB, nil))
}

func TestTrioNoParents(t *testing.T) {
	index := hla.MustParseCallSet("A*01:01", "B*07:02", "C*01:06")
	assert.Equal(t, 0, consistency.TrioMismatches(hla.FourDigit, index, nil, nil))
	assert.Equal(t, 0, consistency.TrioMismatches(hla.TwoDigit, index, nil, nil))
}

func TestTrioPrecision(t *testing.T) {
	index := hla.MustParseCallSet("A*01:01", "A*02:01")
	father := hla.MustParseCallSet("A*01:03", "A*03:01")
	mother := hla.MustParseCallSet("A*02:05", "A*68:02")
	assert.Equal(t, 0, consistency.TrioGeneMismatches(hla.TwoDigit, hla.GeneA, index, father, mother))
	assert.Equal(t, 2, consistency.TrioGeneMismatches(hla.FourDigit, hla.GeneA, index, father, mother))
	// B and C have no calls on any side and so each costs 2.
	assert.Equal(t, 4, consistency.TrioMismatches(hla.TwoDigit, index, father, mother))
	assert.Equal(t, 6, consistency.TrioMismatches(hla.FourDigit, index, father, mother))
}

// The pedigree fixture: daughter1 with father1 and mother1.
func TestTrioPedigreeFixture(t *testing.T) {
	daughter := hla.MustParseCallSet("A*01:01", "A*02:01", "B*07:02", "B*08:01", "C*01:06", "C*02:02")
	father := hla.MustParseCallSet("A*01:03", "A*02:01", "B*07:02", "B*07:05", "C*01:06", "C*02:02")
	mother := hla.MustParseCallSet("A*01:01", "A*68:02", "B*08:01", "B*08:01", "C*01:06", "C*12:16")
	assert.Equal(t, 0, consistency.TrioMismatches(hla.TwoDigit, daughter, father, mother))
	assert.Equal(t, 0, consistency.TrioMismatches(hla.FourDigit, daughter, father, mother))
	for _, p := range precisions {
		assert.False(t, consistency.Identical(p, daughter, father))
		assert.False(t, consistency.Identical(p, daughter, mother))
	}
}

func TestIdentical(t *testing.T) {
	a := hla.MustParseCallSet("A*01:01", "A*02:01", "B*07:02", "B*08:01", "C*01:06", "C*02:02")
	assert.True(t, consistency.Identical(hla.FourDigit, a, a))
	// Duplicates collapse.
	b := hla.MustParseCallSet("A*01:01", "A*02:01", "A*02:01", "B*07:02", "B*08:01", "C*01:06", "C*02:02")
	assert.True(t, consistency.Identical(hla.FourDigit, a, b))
	// One gene differs at 4 digits only.
	c := hla.MustParseCallSet("A*01:01", "A*02:01", "B*07:02", "B*08:01", "C*01:06", "C*02:05")
	assert.False(t, consistency.Identical(hla.FourDigit, a, c))
	assert.True(t, consistency.Identical(hla.TwoDigit, a, c))
	// A differing single gene.
	d := hla.MustParseCallSet("A*01:01", "A*03:01", "B*07:02", "B*08:01", "C*01:06", "C*02:02")
	assert.False(t, consistency.Identical(hla.TwoDigit, a, d))
	assert.False(t, consistency.Identical(hla.TwoDigit, a, nil))
	assert.False(t, consistency.Identical(hla.TwoDigit, nil, a))
}

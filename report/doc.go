// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package report runs the consistency checks over a cohort or a pedigree and
// writes the tab-separated report.
//
// A cohort report has one line per non-reference sample:
//
//   sample  mm2  mm4
//
// and a pedigree report one line per member with a known parent:
//
//   index  num_parents  mm2  mm4  flags
//
// mm2 and mm4 are the mismatch counts at 2 and 4 digits, written as "OK" when
// zero.  Flags is a comma-separated list such as "WARN:identity-father:2", or
// "OK" when empty.
package report

// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package relation parses the relationship tables that tie samples together:
// PLINK-style pedigree files and tumor/normal cohort files.
//
// Pedigree lines have at least six whitespace-separated fields
//
//   family name father mother sex affection [data...]
//
// where a father or mother of "0" means the parent is not in the data set.
// Cohort lines have at least three fields
//
//   donor sample reference [seq_type] [data...]
//
// and a sample that is its own reference is the donor's normal sample.  In both
// formats the data fields hold comma-separated read file paths.  Blank lines
// and lines starting with '#' are ignored.
package relation

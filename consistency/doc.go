// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package consistency checks whether the HLA calls of related samples agree
// with their claimed relationship.
//
// Mismatches compares a sample with its matched reference (tumor vs. normal
// of the same donor).  TrioMismatches checks Mendelian consistency of a child
// against its parents, and Identical flags a child whose calls equal a parent's
// calls, which usually means a labeling mix-up.
//
// All functions are pure; they never modify their arguments.
package consistency

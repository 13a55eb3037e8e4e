// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hla represents HLA class I allele calls as produced by an external
// typer (e.g. OptiType), at up to 4-digit (two-field) resolution.
//
// An allele is written as [HLA-]GENE[*group[:subtype]], for example
// "HLA-A*02:01", "B*15" or "C".  Calls are compared after truncating them to a
// Precision: gene only, 2 digits (allele group), or 4 digits (protein).
package hla

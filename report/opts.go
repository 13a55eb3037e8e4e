// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/antzucaro/matchr"
	"github.com/grailbio/base/errors"
)

// CallsFileName is the name of the typer output inside each individual's
// "<name>.d" directory.
const CallsFileName = "hla_types.txt"

// Opts controls where calls are read from and how.
type Opts struct {
	// CallsDir holds one "<name>.d/hla_types.txt" per individual.
	CallsDir string
	// CallsPaths overrides the call file of individual names.  Paths may use
	// any scheme registered with grailbio/base/file.
	CallsPaths map[string]string
	// Parallelism is the max number of call files read at once.  0 means
	// runtime.NumCPU().
	Parallelism int
}

// DefaultOpts reads calls from the working directory.
var DefaultOpts = Opts{
	CallsDir:    ".",
	Parallelism: 0,
}

// CallsPath returns the call file of the named individual.
func (o Opts) CallsPath(name string) string {
	if path, ok := o.CallsPaths[name]; ok {
		return path
	}
	dir := o.CallsDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name+".d", CallsFileName)
}

func (o Opts) parallelism(n int) int {
	p := o.Parallelism
	if p <= 0 {
		p = runtime.NumCPU()
	}
	if p > n {
		p = n
	}
	return p
}

// checkOverrides returns an error if CallsPaths names an individual that is
// not among known.  The error suggests the closest known name.
func (o Opts) checkOverrides(known []string) error {
	set := make(map[string]bool, len(known))
	for _, name := range known {
		set[name] = true
	}
	var unknown []string
	for name := range o.CallsPaths {
		if !set[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	msg := fmt.Sprintf("call file given for unknown individual %q", unknown[0])
	if s := closest(unknown[0], known); s != "" {
		msg += fmt.Sprintf(", did you mean %q?", s)
	}
	return errors.E(errors.Invalid, msg)
}

// closest returns the name in known nearest to name in edit distance, or ""
// if none is within half the length of name.
func closest(name string, known []string) string {
	best, bestDist := "", len(name)/2+1
	for _, k := range known {
		if d := matchr.Levenshtein(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"context"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/hlama/hla"
	"github.com/grailbio/hlama/util"
)

type callEntry struct {
	calls *hla.CallSet
	err   error
}

// CallStore holds the calls of every individual of a run.  An individual has
// either calls, no calls (its file does not exist), or a load error.
type CallStore struct {
	entries map[string]callEntry
}

// NewCallStore returns a store over calls already in memory.  Individuals not
// in calls have no calls.
func NewCallStore(calls map[string]*hla.CallSet) *CallStore {
	s := &CallStore{entries: make(map[string]callEntry, len(calls))}
	for name, c := range calls {
		s.entries[name] = callEntry{calls: c}
	}
	return s
}

// LoadCalls reads the call file of every named individual.  Files are read
// concurrently.  A failure to read one file is recorded for that individual
// only; see Get.  The returned error is set only if the loading itself could
// not run.
func LoadCalls(ctx context.Context, names []string, opts Opts) (*CallStore, error) {
	var distinct []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			distinct = append(distinct, name)
		}
	}
	entries := make([]callEntry, len(distinct))
	if len(distinct) > 0 {
		parallelism := opts.parallelism(len(distinct))
		// Each job fills its own range of entries, so errors stay per entry.
		err := traverse.Each(parallelism, func(jobIdx int) error {
			startIdx := (jobIdx * len(distinct)) / parallelism
			endIdx := ((jobIdx + 1) * len(distinct)) / parallelism
			for i := startIdx; i < endIdx; i++ {
				entries[i] = loadEntry(ctx, distinct[i], opts.CallsPath(distinct[i]))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	s := &CallStore{entries: make(map[string]callEntry, len(distinct))}
	for i, name := range distinct {
		s.entries[name] = entries[i]
	}
	return s, nil
}

func loadEntry(ctx context.Context, name, path string) callEntry {
	calls, err := hla.LoadCallSet(ctx, path)
	switch {
	case util.IsNotExist(err):
		log.Debug.Printf("%s: no HLA calls at %s", name, path)
		return callEntry{}
	case err != nil:
		return callEntry{err: err}
	}
	log.Debug.Printf("%s: %d HLA calls from %s: %v", name, calls.Len(), path, calls.Strings())
	return callEntry{calls: calls}
}

// Get returns the calls of the named individual.  It returns nil, nil if the
// individual has no calls, and the load error if its file could not be read or
// parsed.
func (s *CallStore) Get(name string) (*hla.CallSet, error) {
	e := s.entries[name]
	return e.calls, e.err
}

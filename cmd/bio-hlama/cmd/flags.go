// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/grailbio/hlama/report"
)

type callsFlags struct {
	callsDir    *string
	calls       *string
	out         *string
	parallelism *int
}

func addCallsFlags(fs *flag.FlagSet) callsFlags {
	return callsFlags{
		callsDir: fs.String("calls-dir", report.DefaultOpts.CallsDir,
			"Directory holding one <name>.d/"+report.CallsFileName+" per individual"),
		calls: fs.String("calls", "",
			"Comma-separated name=path list overriding the call file of individuals"),
		out:         fs.String("out", "", "Output TSV path; empty or '-' writes to stdout"),
		parallelism: fs.Int("parallelism", report.DefaultOpts.Parallelism, "Max number of call files read at once; 0 = runtime.NumCPU()"),
	}
}

func (f callsFlags) opts() (report.Opts, error) {
	paths, err := parseCallsPaths(*f.calls)
	if err != nil {
		return report.Opts{}, err
	}
	return report.Opts{
		CallsDir:    *f.callsDir,
		CallsPaths:  paths,
		Parallelism: *f.parallelism,
	}, nil
}

// parseCallsPaths parses "name=path,name=path".
func parseCallsPaths(s string) (map[string]string, error) {
	if s == "" {
		return nil, nil
	}
	paths := map[string]string{}
	for _, kv := range strings.Split(s, ",") {
		i := strings.Index(kv, "=")
		if i <= 0 || i == len(kv)-1 {
			return nil, fmt.Errorf("-calls: expect name=path, got %q", kv)
		}
		name, path := kv[:i], kv[i+1:]
		if _, ok := paths[name]; ok {
			return nil, fmt.Errorf("-calls: duplicate name %q", name)
		}
		paths[name] = path
	}
	return paths, nil
}

// splitList splits a comma-separated list, dropping empty elements.
func splitList(s string) []string {
	var list []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			list = append(list, e)
		}
	}
	return list
}

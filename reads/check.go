// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reads

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hlama/relation"
	"github.com/pkg/errors"
)

// Opts controls Check.
type Opts struct {
	// BaseDirs are searched, in order, for relative read paths.  Empty means
	// the current directory.
	BaseDirs []string
	// Sniff reads the first record of every file.
	Sniff bool
}

// DefaultOpts resolves relative paths against the current directory and does
// not open the files.
var DefaultOpts = Opts{}

// Individual is the checked read data of one individual.
type Individual struct {
	Name string
	// Files are the resolved read paths, in input order.
	Files []string
	Mode  Mode
}

// isAbs reports whether p is an absolute local path or has a URL scheme such
// as "s3://".
func isAbs(p string) bool {
	return strings.HasPrefix(p, "/") || strings.Contains(p, "://")
}

// Locate returns the path of an existing read file.  Absolute paths must
// exist as given; relative paths are tried under each of baseDirs.
func Locate(ctx context.Context, p string, baseDirs []string) (string, error) {
	if isAbs(p) {
		if _, err := file.Stat(ctx, p); err != nil {
			return "", errors.Errorf("missing file at absolute path %s", p)
		}
		return p, nil
	}
	if len(baseDirs) == 0 {
		baseDirs = []string{"."}
	}
	for _, dir := range baseDirs {
		full := filepath.Join(dir, p)
		if strings.Contains(dir, "://") {
			full = strings.TrimSuffix(dir, "/") + "/" + p
		}
		if _, err := file.Stat(ctx, full); err == nil {
			return full, nil
		}
	}
	return "", errors.Errorf("missing file at relative path %s", p)
}

// Check resolves and validates the read files of one individual.
func Check(ctx context.Context, name string, files []string, opts Opts) (Individual, error) {
	ind := Individual{Name: name}
	if len(files) == 0 {
		return ind, errors.Errorf("individual %s has no FASTQ files", name)
	}
	for _, f := range files {
		resolved, err := Locate(ctx, f, opts.BaseDirs)
		if err != nil {
			return ind, errors.Wrapf(err, "individual %s refers to non-existing path %s", name, f)
		}
		if opts.Sniff {
			if err := Sniff(ctx, resolved); err != nil {
				return ind, errors.Wrapf(err, "individual %s", name)
			}
		}
		ind.Files = append(ind.Files, resolved)
	}
	mode, err := DetectMode(ind.Files)
	if err != nil {
		return ind, errors.Wrapf(err, "individual %s", name)
	}
	ind.Mode = mode
	return ind, nil
}

// CheckGraph runs Check for every individual of g, in table order.  It returns
// the individuals that passed and one error per individual that did not.
func CheckGraph(ctx context.Context, g relation.Graph, opts Opts) ([]Individual, []error) {
	var (
		inds []Individual
		errs []error
	)
	for _, name := range g.Names() {
		ind, err := Check(ctx, name, g.Files(name), opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Debug.Printf("%s: %d %s read files", name, len(ind.Files), ind.Mode)
		inds = append(inds, ind)
	}
	return inds, errs
}

// WriteIndividuals writes name, layout and number of files per individual.
func WriteIndividuals(w io.Writer, inds []Individual) error {
	out := tsv.NewWriter(w)
	for _, ind := range inds {
		out.WriteString(ind.Name)
		out.WriteString(ind.Mode.String())
		out.WriteUint32(uint32(len(ind.Files)))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hlama/reads"
	"github.com/grailbio/hlama/relation"
	"github.com/grailbio/hlama/report"
	"v.io/x/lib/cmdline"
)

func newCmdValidate() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "validate",
		Short: "Check the read files listed in a cohort or pedigree file",
		Long: `
Every individual must list at least one read file.  Relative paths are searched
under -reads-base-dir.  The file names decide between single-end and paired-end
data; with -sniff the first FASTQ record of every file is also checked.`,
		ArgsName: "path",
	}
	mode := cmd.Flags.String("mode", "pedigree", "Input file kind, 'pairs' or 'pedigree'")
	baseDirs := cmd.Flags.String("reads-base-dir", "", "Comma-separated directories searched for relative read paths; default is the current directory")
	sniff := cmd.Flags.Bool("sniff", false, "Read the first record of every read file")
	out := cmd.Flags.String("out", "", "Output TSV path; empty or '-' writes to stdout")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("validate takes one path, but got %v", argv)
		}
		ctx := vcontext.Background()
		g, err := loadGraph(ctx, *mode, argv[0])
		if err != nil {
			return err
		}
		opts := reads.Opts{BaseDirs: splitList(*baseDirs), Sniff: *sniff}
		return validate(ctx, g, opts, *out)
	})
	return cmd
}

func loadGraph(ctx context.Context, mode, path string) (relation.Graph, error) {
	switch mode {
	case "pairs":
		return relation.LoadCohort(ctx, path)
	case "pedigree":
		return relation.LoadPedigree(ctx, path)
	}
	return nil, fmt.Errorf("-mode: expect 'pairs' or 'pedigree', got %q", mode)
}

func validate(ctx context.Context, g relation.Graph, opts reads.Opts, out string) error {
	inds, errs := reads.CheckGraph(ctx, g, opts)
	for _, err := range errs {
		log.Error.Printf("%v", err)
	}
	err := report.WriteFile(ctx, out, func(w io.Writer) error {
		return reads.WriteIndividuals(w, inds)
	})
	if err == nil && len(errs) > 0 {
		err = fmt.Errorf("%d of %d individuals have invalid read files", len(errs), len(errs)+len(inds))
	}
	return err
}

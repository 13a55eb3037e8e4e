// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hlama/report"
	"v.io/x/lib/cmdline"
)

func newCmdPairs() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "pairs",
		Short: "Compare each sample's HLA calls against its reference sample",
		Long: `
The cohort file has one line per sample: donor, sample, reference sample, an
optional sequencing type and the sample's read files.  A sample whose reference
is itself is not reported.  Output columns are sample, 2-digit and 4-digit
mismatch counts.  A sample whose reference has no call file is reported as
OK OK, since nothing can be compared; such samples are logged as errors.`,
		ArgsName: "cohort-path",
	}
	flags := addCallsFlags(&cmd.Flags)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("pairs takes one cohort path, but got %v", argv)
		}
		opts, err := flags.opts()
		if err != nil {
			return err
		}
		return report.CheckPairs(vcontext.Background(), argv[0], *flags.out, opts)
	})
	return cmd
}

func newCmdPedigree() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "pedigree",
		Short: "Check each child's HLA calls against its parents",
		Long: `
The pedigree file is PED-like: family, name, father, mother, sex, affection and
the individual's read files, with "0" for an absent parent.  Output columns are
index, number of parents, 2-digit and 4-digit trio mismatch counts, and
warnings for an index identical to a parent.`,
		ArgsName: "pedigree-path",
	}
	flags := addCallsFlags(&cmd.Flags)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("pedigree takes one pedigree path, but got %v", argv)
		}
		opts, err := flags.opts()
		if err != nil {
			return err
		}
		return report.CheckPedigree(vcontext.Background(), argv[0], *flags.out, opts)
	})
	return cmd
}

// Run is the entry point of bio-hlama.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-hlama",
			Short:    "HLA call consistency checks for related samples",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdPairs(),
				newCmdPedigree(),
				newCmdValidate(),
			},
		})
}

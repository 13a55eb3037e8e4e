// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"flag"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hlama/reads"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallsPaths(t *testing.T) {
	paths, err := parseCallsPaths("")
	require.NoError(t, err)
	expect.EQ(t, len(paths), 0)

	paths, err = parseCallsPaths("a=/x/a.txt,b=s3://bucket/b.txt")
	require.NoError(t, err)
	expect.EQ(t, paths, map[string]string{"a": "/x/a.txt", "b": "s3://bucket/b.txt"})

	for _, bad := range []string{"a", "=x", "a=", "a=x,a=y"} {
		_, err = parseCallsPaths(bad)
		assert.Error(t, err, bad)
	}
}

func TestCallsFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := addCallsFlags(fs)
	require.NoError(t, fs.Parse([]string{"-calls-dir", "/calls", "-calls", "a=/a.txt", "-parallelism", "3"}))
	opts, err := flags.opts()
	require.NoError(t, err)
	expect.EQ(t, opts.CallsDir, "/calls")
	expect.EQ(t, opts.Parallelism, 3)
	expect.EQ(t, opts.CallsPath("a"), "/a.txt")
	expect.EQ(t, opts.CallsPath("b"), "/calls/b.d/hla_types.txt")
}

func TestSplitList(t *testing.T) {
	expect.EQ(t, splitList("a, b,,c"), []string{"a", "b", "c"})
	expect.EQ(t, len(splitList("")), 0)
}

func TestValidate(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	pedPath := filepath.Join(tmpdir, "family.ped")
	require.NoError(t, ioutil.WriteFile(pedPath, []byte(
		"F\tp\t0\t0\t1\t1\tp_R1_001.fq\nF\tc\tp\t0\t2\t2\tc_R1_001.fq,c_R2_001.fq\n"), 0600))
	for _, name := range []string{"p_R1_001.fq", "c_R1_001.fq", "c_R2_001.fq"} {
		require.NoError(t, ioutil.WriteFile(filepath.Join(tmpdir, name), []byte("@r\nA\n+\nI\n"), 0600))
	}

	_, err := loadGraph(ctx, "trio", pedPath)
	assert.Error(t, err)
	g, err := loadGraph(ctx, "pedigree", pedPath)
	require.NoError(t, err)

	out := filepath.Join(tmpdir, "validate.tsv")
	require.NoError(t, validate(ctx, g, reads.Opts{BaseDirs: []string{tmpdir}, Sniff: true}, out))
	data, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	expect.EQ(t, string(data), "p\tsingle-end\t1\nc\tpaired-end\t2\n")

	// Without the base directory nothing resolves.
	assert.Error(t, validate(ctx, g, reads.DefaultOpts, out))
}

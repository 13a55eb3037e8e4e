// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hla_test

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hlama/hla"
	"github.com/grailbio/hlama/util"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fatherCalls = "A*02:01\nA*01:03\n\nB*07:05\nB*07:02\nC*02:02\nC*01:06\n"

func TestReadCallSet(t *testing.T) {
	s, err := hla.ReadCallSet(strings.NewReader(fatherCalls), "father1")
	require.NoError(t, err)
	expect.EQ(t, s.Len(), 6)
	expect.EQ(t, s.Strings(), []string{
		"HLA-A*01:03", "HLA-A*02:01", "HLA-B*07:02", "HLA-B*07:05", "HLA-C*01:06", "HLA-C*02:02"})
	expect.EQ(t, len(s.Gene(hla.GeneA)), 2)
	expect.EQ(t, s.Gene(hla.GeneB)[1].Subtype, "05")
	expect.EQ(t, s.PrecisionSet(hla.GeneB, hla.TwoDigit), map[string]struct{}{"HLA-B*07": {}})
}

func TestReadCallSetMalformed(t *testing.T) {
	_, err := hla.ReadCallSet(strings.NewReader("A*01:01\n\nDQB1*06:02\n"), "calls.txt")
	require.Error(t, err)
	e, ok := err.(*hla.MalformedAlleleError)
	require.True(t, ok)
	expect.EQ(t, e.Line, 3)
	expect.EQ(t, e.Path, "calls.txt")
	expect.EQ(t, e.Error(), `calls.txt:3: malformed HLA allele "DQB1*06:02"`)
}

func TestLoadCallSet(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	plain := filepath.Join(tmpdir, "hla_types.txt")
	require.NoError(t, ioutil.WriteFile(plain, []byte(fatherCalls), 0600))
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(fatherCalls))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	compressed := filepath.Join(tmpdir, "hla_types.txt.gz")
	require.NoError(t, ioutil.WriteFile(compressed, buf.Bytes(), 0600))

	a, err := hla.LoadCallSet(ctx, plain)
	require.NoError(t, err)
	b, err := hla.LoadCallSet(ctx, compressed)
	require.NoError(t, err)
	assert.Equal(t, a.Strings(), b.Strings())

	_, err = hla.LoadCallSet(ctx, filepath.Join(tmpdir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, util.IsNotExist(err), "%v", err)
}

func TestEmptyCallSet(t *testing.T) {
	s, err := hla.ReadCallSet(strings.NewReader(""), "empty")
	require.NoError(t, err)
	expect.EQ(t, s.Len(), 0)
	expect.EQ(t, len(s.PrecisionSet(hla.GeneA, hla.FourDigit)), 0)
}

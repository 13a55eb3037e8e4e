// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

/*
bio-hlama checks the HLA calls of related samples for consistency: tumor
against matched normal, children against their parents.
*/

import (
	"github.com/grailbio/base/grail"
	"github.com/grailbio/hlama/cmd/bio-hlama/cmd"
)

func main() {
	shutdown := grail.Init()
	defer shutdown()
	cmd.Run()
}

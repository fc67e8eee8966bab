// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/deedregistry/deedd/command/deed-cli/rpccalls"
)

func runDeedList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect, err := m.checkConnect()
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ListDeeds(c.Uint64("page"), c.Uint64("page-size"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

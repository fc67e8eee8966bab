// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/deedregistry/deedd/command/deed-cli/rpccalls"
)

func runDeedCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect, err := m.checkConnect()
	if nil != err {
		return err
	}

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}

	address := c.String("address")
	if "" == address {
		return fmt.Errorf("address is required")
	}

	shares := c.Uint64("shares")
	if 0 == shares {
		return fmt.Errorf("shares must be greater than zero")
	}

	owner, err := optionalAccount(c.String("owner"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", address)
		fmt.Fprintf(m.e, "shares: %d\n", shares)
	}

	client, err := rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	createConfig := &rpccalls.CreateDeedData{
		Caller:          caller,
		Address:         address,
		TokenizedShares: shares,
		Owner:           owner,
	}

	response, err := client.CreateDeed(createConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

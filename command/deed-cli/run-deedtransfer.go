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

func runDeedTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect, err := m.checkConnect()
	if nil != err {
		return err
	}

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}

	id := c.Uint64("id")
	if 0 == id {
		return fmt.Errorf("deed id is required")
	}

	to, err := checkAccount("receiver", c.String("receiver"))
	if nil != err {
		return err
	}

	from, err := optionalAccount(c.String("from"))
	if nil != err {
		return err
	}

	shares := c.Uint64("shares")
	if 0 == shares {
		return fmt.Errorf("shares must be greater than zero")
	}

	var privateKey []byte
	if c.Bool("sign") {
		if nil == m.privateKey {
			return fmt.Errorf("signing needs --secret")
		}
		privateKey = m.privateKey
	}

	if m.verbose {
		fmt.Fprintf(m.e, "deed: %d\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", to)
		fmt.Fprintf(m.e, "shares: %d\n", shares)
	}

	client, err := rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	transferConfig := &rpccalls.TransferDeedData{
		Caller:     caller,
		Id:         id,
		From:       from,
		To:         to,
		Shares:     shares,
		PrivateKey: privateKey,
	}

	response, err := client.TransferDeed(transferConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

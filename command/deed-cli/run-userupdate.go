// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/deedregistry/deedd/command/deed-cli/rpccalls"
)

func runUserUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect, err := m.checkConnect()
	if nil != err {
		return err
	}

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}

	acc, err := checkAccount("account", c.String("account"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	updateConfig := &rpccalls.UpdateUserData{
		Caller:      caller,
		Account:     acc,
		Name:        c.String("name"),
		ContactInfo: c.String("contact"),
		Role:        c.String("role"),
	}

	response, err := client.UpdateUser(updateConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

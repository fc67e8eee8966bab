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

func runUserCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect, err := m.checkConnect()
	if nil != err {
		return err
	}

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}

	acc, err := optionalAccount(c.String("account"))
	if nil != err {
		return err
	}

	name := c.String("name")
	contact := c.String("contact")
	role := c.String("role")
	if "" == name || "" == contact || "" == role {
		return fmt.Errorf("name, contact and role are all required")
	}

	client, err := rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	createConfig := &rpccalls.CreateUserData{
		Caller:      caller,
		Account:     acc,
		Name:        name,
		ContactInfo: contact,
		Role:        role,
	}

	response, err := client.CreateUser(createConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

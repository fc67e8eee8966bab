// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// operator client for a deedd daemon
//
// connects to the TLS JSON-RPC port and wraps every service the daemon
// exposes; the caller identity is a base58 account string, mutations
// that need signing take an ed25519 private key in hex
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/deedregistry/deedd/account"
)

type metadata struct {
	connect    string
	testnet    bool
	verbose    bool
	caller     *account.Account
	privateKey []byte
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "deed-cli"
	app.Usage = "deed registry command line client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " generate test network accounts",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: " deedd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " caller `ACCOUNT` in base58, derived from --secret when absent",
		},
		cli.StringFlag{
			Name:  "secret, s",
			Value: "",
			Usage: " caller's ed25519 private key `HEX`, seed or full key",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate an ed25519 key pair, output only, not stored",
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display deedd status",
			Action: runInfo,
		},
		{
			Name:  "deed",
			Usage: "deed record operations",
			Subcommands: []cli.Command{
				{
					Name:      "get",
					Usage:     "fetch one deed",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.Uint64Flag{
							Name:  "id, d",
							Usage: "*deed `ID`",
						},
					},
					Action: runDeedGet,
				},
				{
					Name:      "create",
					Usage:     "register a new deed",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "address, a",
							Value: "",
							Usage: "*postal address `STRING`",
						},
						cli.Uint64Flag{
							Name:  "shares, q",
							Usage: "*tokenized share count `NUMBER`",
						},
						cli.StringFlag{
							Name:  "owner, o",
							Value: "",
							Usage: " initial owner `ACCOUNT`, defaults to the caller",
						},
					},
					Action: runDeedCreate,
				},
				{
					Name:      "update",
					Usage:     "update a deed, blank fields stay unchanged",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.Uint64Flag{
							Name:  "id, d",
							Usage: "*deed `ID`",
						},
						cli.StringFlag{
							Name:  "address, a",
							Value: "",
							Usage: " new postal address `STRING`",
						},
						cli.Uint64Flag{
							Name:  "shares, q",
							Usage: " share count `NUMBER`, must match the stored value",
						},
					},
					Action: runDeedUpdate,
				},
				{
					Name:      "delete",
					Usage:     "remove a deed",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.Uint64Flag{
							Name:  "id, d",
							Usage: "*deed `ID`",
						},
					},
					Action: runDeedDelete,
				},
				{
					Name:  "list",
					Usage: "list one page of deeds",
					Flags: []cli.Flag{
						cli.Uint64Flag{
							Name:  "page, p",
							Value: 0,
							Usage: " zero-indexed page `NUMBER`",
						},
						cli.Uint64Flag{
							Name:  "page-size, z",
							Value: 20,
							Usage: " records per page `COUNT`",
						},
					},
					Action: runDeedList,
				},
				{
					Name:      "transfer",
					Usage:     "move shares of a deed to another account",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.Uint64Flag{
							Name:  "id, d",
							Usage: "*deed `ID`",
						},
						cli.StringFlag{
							Name:  "from, f",
							Value: "",
							Usage: " sending `ACCOUNT`, defaults to the caller",
						},
						cli.StringFlag{
							Name:  "receiver, r",
							Value: "",
							Usage: "*receiving `ACCOUNT`",
						},
						cli.Uint64Flag{
							Name:  "shares, q",
							Usage: "*share count `NUMBER`",
						},
						cli.BoolFlag{
							Name:  "sign",
							Usage: " sign the transfer with --secret",
						},
					},
					Action: runDeedTransfer,
				},
			},
		},
		{
			Name:  "user",
			Usage: "user profile operations",
			Subcommands: []cli.Command{
				{
					Name:      "get",
					Usage:     "fetch one user profile",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "account, a",
							Value: "",
							Usage: "*user `ACCOUNT`",
						},
					},
					Action: runUserGet,
				},
				{
					Name:      "create",
					Usage:     "register a user profile",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "account, a",
							Value: "",
							Usage: " user `ACCOUNT`, defaults to the caller",
						},
						cli.StringFlag{
							Name:  "name, n",
							Value: "",
							Usage: "*display name `STRING`",
						},
						cli.StringFlag{
							Name:  "contact, m",
							Value: "",
							Usage: "*contact info `STRING`",
						},
						cli.StringFlag{
							Name:  "role, r",
							Value: "",
							Usage: "*role [user|owner|admin]",
						},
					},
					Action: runUserCreate,
				},
				{
					Name:      "update",
					Usage:     "update a user profile, blank fields stay unchanged",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "account, a",
							Value: "",
							Usage: "*user `ACCOUNT`",
						},
						cli.StringFlag{
							Name:  "name, n",
							Value: "",
							Usage: " display name `STRING`",
						},
						cli.StringFlag{
							Name:  "contact, m",
							Value: "",
							Usage: " contact info `STRING`",
						},
						cli.StringFlag{
							Name:  "role, r",
							Value: "",
							Usage: " role [user|owner|admin]",
						},
					},
					Action: runUserUpdate,
				},
				{
					Name:      "delete",
					Usage:     "remove a user profile",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "account, a",
							Value: "",
							Usage: "*user `ACCOUNT`",
						},
					},
					Action: runUserDelete,
				},
				{
					Name:  "list",
					Usage: "list one page of users",
					Flags: []cli.Flag{
						cli.Uint64Flag{
							Name:  "page, p",
							Value: 0,
							Usage: " zero-indexed page `NUMBER`",
						},
						cli.Uint64Flag{
							Name:  "page-size, z",
							Value: 20,
							Usage: " records per page `COUNT`",
						},
					},
					Action: runUserList,
				},
			},
		},
		{
			Name:  "version",
			Usage: "display deed-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// resolve the caller identity before any command runs
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		m := &metadata{
			connect: c.GlobalString("connect"),
			testnet: c.GlobalBool("testnet"),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		secretHex := c.GlobalString("secret")
		if "" != secretHex {
			privateKey, err := parsePrivateKey(secretHex)
			if nil != err {
				return err
			}
			m.privateKey = privateKey
		}

		identity := c.GlobalString("identity")
		if "" != identity {
			caller, err := account.AccountFromBase58(identity)
			if nil != err {
				return err
			}
			m.caller = caller
		} else if nil != m.privateKey {
			m.caller = accountFromPrivateKey(m.privateKey, m.testnet)
		}

		if verbose && nil != m.caller {
			fmt.Fprintf(e, "caller: %s\n", m.caller)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

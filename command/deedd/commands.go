// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
)

const (
	rpcCertificateFilename = "rpc.crt"
	rpcPrivateKeyFilename  = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files; these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "version":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                     (h)      - display this message\n\n")
		fmt.Printf("  version                  (v)      - display the program version\n\n")
		fmt.Printf("  gen-rpc-cert             (rpc)    - create %q and %q in the current directory\n", rpcPrivateKeyFilename, rpcCertificateFilename)
		fmt.Printf("  gen-rpc-cert DIR [IPs...]         - create rpc files in the specified directory\n\n")
		fmt.Printf("  start                             - just run the daemon (requires configuration file)\n\n")
		fmt.Printf("  config                            - display the parsed configuration and exit\n\n")
		return true

	default:
		// not a setup command
		return false
	}

	return true
}

// config command handler
//
// commands that perform enquiries on the parsed configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	switch arguments[0] {
	case "config":
		buffer, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("config marshal error: %s", err)
		}
		fmt.Printf("%s\n", buffer)
		return true

	case "start":
		// let the daemon run
		return false

	default:
		return false
	}
}

// determine the full path for a file
func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) >= 1 && "" != arguments[0] {
		directory = arguments[0]
	}
	return filepath.Join(directory, name)
}

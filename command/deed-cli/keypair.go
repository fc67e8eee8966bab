// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/deedregistry/deedd/account"
)

// RawKeyPair - key pair in the JSON output form
type RawKeyPair struct {
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// create a new key pair
//
// the private key output is the 32 byte seed, suitable for the
// --secret flag
func makeRawKeyPair(testnet bool) (*RawKeyPair, error) {

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      testnet,
			PublicKey: publicKey,
		},
	}

	rawKeyPair := &RawKeyPair{
		Account:    acc.String(),
		PublicKey:  hex.EncodeToString(publicKey),
		PrivateKey: hex.EncodeToString(privateKey.Seed()),
	}
	return rawKeyPair, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/deedregistry/deedd/account"
)

// parse a hex encoded ed25519 key, either a 32 byte seed or a full
// 64 byte private key
func parsePrivateKey(secretHex string) ([]byte, error) {

	b, err := hex.DecodeString(strings.TrimSpace(secretHex))
	if nil != err {
		return nil, err
	}

	switch len(b) {
	case ed25519.SeedSize:
		return []byte(ed25519.NewKeyFromSeed(b)), nil
	case ed25519.PrivateKeySize:
		return b, nil
	default:
		return nil, fmt.Errorf("secret: %d bytes is not an ed25519 seed or private key", len(b))
	}
}

// derive the public account from a private key
func accountFromPrivateKey(privateKey []byte, testnet bool) *account.Account {
	publicKey := ed25519.PrivateKey(privateKey).Public().(ed25519.PublicKey)
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      testnet,
			PublicKey: publicKey,
		},
	}
}

// the connect flag is required for every command that talks to a daemon
func (m *metadata) checkConnect() (string, error) {
	if "" == m.connect || !strings.Contains(m.connect, ":") {
		return "", fmt.Errorf("connect: %q is not HOST:PORT", m.connect)
	}
	return m.connect, nil
}

// mutations always need a caller identity
func (m *metadata) requireCaller() (*account.Account, error) {
	if nil == m.caller {
		return nil, fmt.Errorf("caller identity is not set, use --identity or --secret")
	}
	return m.caller, nil
}

// parse a required base58 account flag
func checkAccount(name string, accountBase58 string) (*account.Account, error) {
	if "" == accountBase58 {
		return nil, fmt.Errorf("%s: account is required", name)
	}
	return account.AccountFromBase58(accountBase58)
}

// parse an optional base58 account flag, blank maps to nil
func optionalAccount(accountBase58 string) (*account.Account, error) {
	if "" == accountBase58 {
		return nil, nil
	}
	return account.AccountFromBase58(accountBase58)
}

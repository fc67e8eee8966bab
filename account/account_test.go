// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/fault"
)

// helper to generate a live-network ed25519 account and its private key
func makeAccount(t *testing.T) (*account.Account, ed25519.PrivateKey) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}
	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      false,
			PublicKey: publicKey,
		},
	}
	return acc, privateKey
}

func TestBase58RoundTrip(t *testing.T) {

	acc, _ := makeAccount(t)

	encoded := acc.String()
	decoded, err := account.AccountFromBase58(encoded)
	if nil != err {
		t.Fatalf("decode failed: %s", err)
	}
	if !bytes.Equal(decoded.Bytes(), acc.Bytes()) {
		t.Errorf("round trip mismatch, got: %x  expected: %x", decoded.Bytes(), acc.Bytes())
	}
	if decoded.IsTesting() {
		t.Errorf("live key decoded as test key")
	}
}

func TestBytesRoundTrip(t *testing.T) {

	acc, _ := makeAccount(t)

	decoded, err := account.AccountFromBytes(acc.Bytes())
	if nil != err {
		t.Fatalf("decode failed: %s", err)
	}
	if decoded.String() != acc.String() {
		t.Errorf("round trip mismatch, got: %s  expected: %s", decoded, acc)
	}
}

func TestChecksumRejected(t *testing.T) {

	acc, _ := makeAccount(t)

	encoded := acc.String()

	// corrupt the final character
	last := encoded[len(encoded)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	corrupted := encoded[:len(encoded)-1] + string(replacement)

	_, err := account.AccountFromBase58(corrupted)
	if nil == err {
		t.Fatalf("corrupted account was accepted")
	}
	if !fault.IsErrInvalid(err) {
		t.Errorf("unexpected error class: %v", err)
	}
}

func TestCheckSignature(t *testing.T) {

	acc, privateKey := makeAccount(t)

	message := []byte("transfer 40 shares of deed 1")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	if err := acc.CheckSignature(message, signature); nil != err {
		t.Fatalf("valid signature rejected: %s", err)
	}

	// wrong message must fail
	if err := acc.CheckSignature([]byte("transfer 41 shares of deed 1"), signature); nil == err {
		t.Errorf("signature accepted for altered message")
	}

	// truncated signature must fail
	if err := acc.CheckSignature(message, signature[:10]); fault.InvalidSignature != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJSONMarshalling(t *testing.T) {

	acc, _ := makeAccount(t)

	buffer, err := json.Marshal(acc)
	if nil != err {
		t.Fatalf("marshal failed: %s", err)
	}

	var decoded account.Account
	err = json.Unmarshal(buffer, &decoded)
	if nil != err {
		t.Fatalf("unmarshal failed: %s", err)
	}
	if decoded.String() != acc.String() {
		t.Errorf("JSON round trip mismatch, got: %s  expected: %s", &decoded, acc)
	}
}

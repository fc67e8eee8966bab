// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"testing"
)

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	trx.Put(Pool.TestData, []byte("alpha"), []byte("one"))
	trx.PutN(Pool.TestData, []byte("beta"), 42)

	// staged writes are visible inside the transaction
	if !bytes.Equal([]byte("one"), trx.Get(Pool.TestData, []byte("alpha"))) {
		t.Errorf("staged value not visible before commit")
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	if !bytes.Equal([]byte("one"), Pool.TestData.Get([]byte("alpha"))) {
		t.Errorf("committed value missing")
	}
	n, ok := Pool.TestData.GetN([]byte("beta"))
	if !ok || 42 != n {
		t.Errorf("committed counter: actual: %d ok: %v  expected: 42", n, ok)
	}
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	Pool.TestData.Put([]byte("gamma"), []byte("before"))

	trx, err := NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	trx.Put(Pool.TestData, []byte("gamma"), []byte("after"))
	trx.Put(Pool.TestData, []byte("delta"), []byte("new"))
	trx.Abort()

	if !bytes.Equal([]byte("before"), Pool.TestData.Get([]byte("gamma"))) {
		t.Errorf("aborted write leaked to the database")
	}
	if nil != Pool.TestData.Get([]byte("delta")) {
		t.Errorf("aborted insert leaked to the database")
	}
}

func TestTransactionSingleWriter(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	defer trx.Abort()

	if !trx.InUse() {
		t.Errorf("transaction not marked in use")
	}

	_, err = NewDBTransaction()
	if nil == err {
		t.Fatalf("second concurrent transaction unexpectedly succeeded")
	}
}

func TestTransactionDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	Pool.TestData.Put([]byte("epsilon"), []byte("data"))

	trx, err := NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	trx.Delete(Pool.TestData, []byte("epsilon"))
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	if nil != Pool.TestData.Get([]byte("epsilon")) {
		t.Errorf("deleted key still readable")
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"testing"
)

// helper to add some test data
func setupTestData(t *testing.T, p *PoolHandle) {
	for _, item := range expectedElements {
		p.Put(item.Key, item.Value)
	}
}

// a set of ascending keys
var expectedElements = []Element{
	{Key: []byte("key-one"), Value: []byte("data-one")},
	{Key: []byte("key-three"), Value: []byte("data-three")},
	{Key: []byte("key-two"), Value: []byte("data-two")},
	{Key: []byte("key-zz"), Value: []byte("data-zz")},
}

func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData
	setupTestData(t, p)

	for i, item := range expectedElements {
		value := p.Get(item.Key)
		if !bytes.Equal(item.Value, value) {
			t.Errorf("%d: actual: %q  expected: %q", i, value, item.Value)
		}
		if !p.Has(item.Key) {
			t.Errorf("%d: missing: %q", i, item.Key)
		}
	}

	p.Delete(expectedElements[1].Key)
	if p.Has(expectedElements[1].Key) {
		t.Errorf("deleted key still present: %q", expectedElements[1].Key)
	}
	if nil != p.Get(expectedElements[1].Key) {
		t.Errorf("deleted key still readable: %q", expectedElements[1].Key)
	}

	// other records must be untouched
	value := p.Get(expectedElements[0].Key)
	if !bytes.Equal(expectedElements[0].Value, value) {
		t.Errorf("actual: %q  expected: %q", value, expectedElements[0].Value)
	}
}

func TestGetMissing(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData
	if nil != p.Get([]byte("no-such-key")) {
		t.Errorf("unexpected data for missing key")
	}
	if p.Has([]byte("no-such-key")) {
		t.Errorf("unexpected Has for missing key")
	}
}

func TestPutNGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData

	key := []byte("counter")
	p.PutN(key, 0x123456789abcdef0)

	n, ok := p.GetN(key)
	if !ok {
		t.Fatalf("missing numeric record")
	}
	if 0x123456789abcdef0 != n {
		t.Errorf("actual: 0x%x  expected: 0x123456789abcdef0", n)
	}

	_, ok = p.GetN([]byte("no-such-counter"))
	if ok {
		t.Errorf("unexpected numeric record for missing key")
	}
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData

	_, found := p.LastElement()
	if found {
		t.Fatalf("unexpected element in empty pool")
	}

	setupTestData(t, p)

	last, found := p.LastElement()
	if !found {
		t.Fatalf("missing last element")
	}
	expected := expectedElements[len(expectedElements)-1]
	if !bytes.Equal(expected.Key, last.Key) {
		t.Errorf("key: actual: %q  expected: %q", last.Key, expected.Key)
	}
	if !bytes.Equal(expected.Value, last.Value) {
		t.Errorf("value: actual: %q  expected: %q", last.Value, expected.Value)
	}
}

// pools with different prefixes must not interfere
func TestPoolIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")
	Pool.Deeds.Put(key, []byte("deed-data"))
	Pool.Users.Put(key, []byte("user-data"))

	if !bytes.Equal([]byte("deed-data"), Pool.Deeds.Get(key)) {
		t.Errorf("deed pool corrupted")
	}
	if !bytes.Equal([]byte("user-data"), Pool.Users.Get(key)) {
		t.Errorf("user pool corrupted")
	}

	Pool.Deeds.Delete(key)
	if nil == Pool.Users.Get(key) {
		t.Errorf("delete crossed pool boundary")
	}
}

// data written before a close must survive a reopen
func TestReopenPersistence(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData
	setupTestData(t, p)

	Finalise()

	err := Initialise(databaseFileName, ReadWrite)
	if nil != err {
		t.Fatalf("storage reinitialise error: %s", err)
	}

	p = Pool.TestData
	for i, item := range expectedElements {
		value := p.Get(item.Key)
		if !bytes.Equal(item.Value, value) {
			t.Errorf("%d: after reopen: actual: %q  expected: %q", i, value, item.Value)
		}
	}
}

func TestInitialiseTwiceFails(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := Initialise(databaseFileName, ReadWrite)
	if nil == err {
		t.Fatalf("second initialise unexpectedly succeeded")
	}
}

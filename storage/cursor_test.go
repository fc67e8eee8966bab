// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"testing"
)

func TestCursorFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData
	setupTestData(t, p)

	cursor := p.NewFetchCursor()

	data, err := cursor.Fetch(2)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 2 != len(data) {
		t.Fatalf("fetch count: actual: %d  expected: 2", len(data))
	}
	for i, item := range data {
		if !bytes.Equal(expectedElements[i].Key, item.Key) {
			t.Errorf("%d: key: actual: %q  expected: %q", i, item.Key, expectedElements[i].Key)
		}
		if !bytes.Equal(expectedElements[i].Value, item.Value) {
			t.Errorf("%d: value: actual: %q  expected: %q", i, item.Value, expectedElements[i].Value)
		}
	}

	// second fetch continues from the cursor position
	data, err = cursor.Fetch(10)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 2 != len(data) {
		t.Fatalf("fetch count: actual: %d  expected: 2", len(data))
	}
	for i, item := range data {
		if !bytes.Equal(expectedElements[i+2].Key, item.Key) {
			t.Errorf("%d: key: actual: %q  expected: %q", i, item.Key, expectedElements[i+2].Key)
		}
	}

	// pool exhausted
	data, err = cursor.Fetch(10)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 0 != len(data) {
		t.Fatalf("fetch count: actual: %d  expected: 0", len(data))
	}
}

func TestCursorFetchInvalidCount(t *testing.T) {
	setup(t)
	defer teardown(t)

	cursor := Pool.TestData.NewFetchCursor()
	_, err := cursor.Fetch(0)
	if nil == err {
		t.Fatalf("fetch of zero elements unexpectedly succeeded")
	}
}

func TestCursorSkip(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData
	setupTestData(t, p)

	cursor := p.NewFetchCursor()

	n, err := cursor.Skip(3)
	if nil != err {
		t.Fatalf("skip error: %s", err)
	}
	if 3 != n {
		t.Fatalf("skip count: actual: %d  expected: 3", n)
	}

	data, err := cursor.Fetch(10)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 1 != len(data) {
		t.Fatalf("fetch count: actual: %d  expected: 1", len(data))
	}
	if !bytes.Equal(expectedElements[3].Key, data[0].Key) {
		t.Errorf("key: actual: %q  expected: %q", data[0].Key, expectedElements[3].Key)
	}

	// skip beyond the end reports the shortfall
	cursor = p.NewFetchCursor()
	n, err = cursor.Skip(100)
	if nil != err {
		t.Fatalf("skip error: %s", err)
	}
	if len(expectedElements) != n {
		t.Fatalf("skip count: actual: %d  expected: %d", n, len(expectedElements))
	}
}

func TestCursorSeek(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData
	setupTestData(t, p)

	cursor := p.NewFetchCursor()
	cursor.Seek(expectedElements[2].Key)

	data, err := cursor.Fetch(10)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 2 != len(data) {
		t.Fatalf("fetch count: actual: %d  expected: 2", len(data))
	}
	if !bytes.Equal(expectedElements[2].Key, data[0].Key) {
		t.Errorf("key: actual: %q  expected: %q", data[0].Key, expectedElements[2].Key)
	}
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := Pool.TestData
	setupTestData(t, p)

	i := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if !bytes.Equal(expectedElements[i].Key, key) {
			t.Errorf("%d: key: actual: %q  expected: %q", i, key, expectedElements[i].Key)
		}
		if !bytes.Equal(expectedElements[i].Value, value) {
			t.Errorf("%d: value: actual: %q  expected: %q", i, value, expectedElements[i].Value)
		}
		i += 1
		return nil
	})
	if nil != err {
		t.Fatalf("map error: %s", err)
	}
	if len(expectedElements) != i {
		t.Fatalf("map count: actual: %d  expected: %d", i, len(expectedElements))
	}
}

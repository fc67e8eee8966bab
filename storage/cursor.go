// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"math/big"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/deedregistry/deedd/fault"
)

// FetchCursor - index cursor to remember position in a fetch
type FetchCursor struct {
	pool     *PoolHandle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor to the start of a pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: ldb_util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - position the cursor exactly at a key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// one added to a key so the next fetch continues after it
type fetchCursorKey struct {
	one big.Int
}

var fck fetchCursorKey

func init() {
	fck.one.SetInt64(1)
}

// Fetch - return some elements starting from the cursor position
//
// the cursor is advanced past the returned elements so that a
// subsequent Fetch continues where this one left off
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.dataAccess {
		return nil, fault.DatabaseIsNotSet
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	results := make([]Element, 0, count)
	n := 0
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		e := Element{
			Key:   dataKey,
			Value: dataValue,
		}
		results = append(results, e)
		n += 1
		if n >= count {
			break
		}
	}
	iter.Release()
	err := iter.Error()
	if nil != err {
		return nil, err
	}

	if len(results) > 0 {
		cursor.advanceTo(results[len(results)-1].Key)
	}
	return results, nil
}

// Skip - advance the cursor over some elements without returning them
//
// returns the number of elements actually skipped, which is less than
// count when the pool is exhausted first
func (cursor *FetchCursor) Skip(count int) (int, error) {
	if nil == cursor {
		return 0, fault.InvalidCursor
	}
	if count < 0 {
		return 0, fault.InvalidCount
	}
	if 0 == count {
		return 0, nil
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.dataAccess {
		return 0, fault.DatabaseIsNotSet
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	n := 0
	lastKey := []byte(nil)
	for iter.Next() {
		key := iter.Key()
		lastKey = make([]byte, len(key)-1)
		copy(lastKey, key[1:])
		n += 1
		if n >= count {
			break
		}
	}
	iter.Release()
	err := iter.Error()
	if nil != err {
		return 0, err
	}

	if nil != lastKey {
		cursor.advanceTo(lastKey)
	}
	return n, nil
}

// Map - run a function on all remaining elements
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.dataAccess {
		return fault.DatabaseIsNotSet
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	lastKey := []byte(nil)
	err := error(nil)
	for iter.Next() {

		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1)
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break
		}
		lastKey = dataKey
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}

	if nil != lastKey {
		cursor.advanceTo(lastKey)
	}
	return err
}

// set the cursor start to key+1 so the key itself is excluded
func (cursor *FetchCursor) advanceTo(key []byte) {
	b := new(big.Int)
	b.SetBytes(key)
	b.Add(b, &fck.one)

	keyLen := len(key)
	buffer := b.Bytes()
	if len(buffer) > keyLen {
		keyLen = len(buffer) // key overflowed to one more byte
	}

	start := make([]byte, 1+keyLen)
	start[0] = cursor.pool.prefix
	copy(start[1+keyLen-len(buffer):], buffer)
	cursor.maxRange.Start = start
}

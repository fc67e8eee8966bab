// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - the subset of pool operations needed by readers
type Handle interface {
	Get(key []byte) []byte
	GetN(key []byte) (uint64, bool)
	Has(key []byte) bool
	LastElement() (Element, bool)
	NewFetchCursor() *FetchCursor
}

// PoolHandle - handle of a pool
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// stage a key/value pair, no immediate commit
func (p *PoolHandle) put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		logger.Panic("pool.put nil dataAccess")
		return
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

// stage a key removal, no immediate commit
func (p *PoolHandle) remove(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	p.dataAccess.Delete(p.prefixKey(key))
}

// Put - store a key/value bytes pair to the database
//
// standalone use outside a transaction commits before returning
func (p *PoolHandle) Put(key []byte, value []byte) {
	standalone := !p.dataAccess.InUse()
	if standalone {
		err := p.dataAccess.Begin()
		logger.PanicIfError("pool.Put", err)
	}
	p.put(key, value)
	if standalone {
		err := p.dataAccess.Commit()
		logger.PanicIfError("pool.Put", err)
	}
}

// PutN - store a uint64 value as an 8 byte big endian record
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key from the database
//
// standalone use outside a transaction commits before returning
func (p *PoolHandle) Delete(key []byte) {
	standalone := !p.dataAccess.InUse()
	if standalone {
		err := p.dataAccess.Begin()
		logger.PanicIfError("pool.Delete", err)
	}
	p.remove(key)
	if standalone {
		err := p.dataAccess.Commit()
		logger.PanicIfError("pool.Delete", err)
	}
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return nil
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < uint64ByteSize {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:uint64ByteSize])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return false
	}
	value, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return Element{}, false
	}

	iter := p.dataAccess.Iterator(&maxRange)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}

const uint64ByteSize = 8

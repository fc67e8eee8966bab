// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - all writes of one operation staged and committed together
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// TransactionData - implement Transaction over a single Access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - mark the underlying batch in use
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Abort - discard all staged writes
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// Commit - flush all staged writes to disk
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// InUse - is a transaction in progress
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Put - stage a key/value pair into a pool
func (t *TransactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.put(key, value)
}

// PutN - stage a uint64 as an 8 byte big endian record
func (t *TransactionData) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, value)
	pool.put(key, buffer)
}

// Delete - stage a key removal from a pool
func (t *TransactionData) Delete(pool *PoolHandle, key []byte) {
	pool.remove(key)
}

// Get - read through the pool, staged values first
func (t *TransactionData) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

// GetN - read a uint64 through the pool, staged values first
func (t *TransactionData) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.GetN(key)
}

// Has - check a key through the pool, staged values first
func (t *TransactionData) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}

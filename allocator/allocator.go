// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocator

import (
	"math"

	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/storage"
)

// Allocator - a durable monotonic id sequence
//
// the last issued id is stored in the counters pool under the
// sequence name, so ids resume after a restart and are never reused,
// even for records that have since been deleted
type Allocator struct {
	key []byte
}

// New - create an allocator for a named sequence
func New(name string) *Allocator {
	return &Allocator{
		key: []byte(name),
	}
}

// Next - issue the next id inside a transaction
//
// the increment is staged on the transaction so an aborted operation
// does not consume the id
func (a *Allocator) Next(trx storage.Transaction) (uint64, error) {
	current, _ := trx.GetN(storage.Pool.Counters, a.key)
	if math.MaxUint64 == current {
		return 0, fault.CounterOverflow
	}
	id := current + 1
	trx.PutN(storage.Pool.Counters, a.key, id)
	return id, nil
}

// Current - the last issued id, zero if none was ever issued
func (a *Allocator) Current() uint64 {
	n, _ := storage.Pool.Counters.GetN(a.key)
	return n
}

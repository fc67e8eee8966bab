// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++          = concatenation of byte data
// 3. deed id     = big endian uint64 (8 bytes)
// 4. account     = packed account (key variant byte ++ 32 byte public key)
// 5. count       = big endian uint64 (8 bytes)
//
// Deeds:
//
//	D ++ deed id               - registered deed records
//	                             data: JSON packed deed (address, owner,
//	                             shares, audit fields, history)
//
// Users:
//
//	U ++ account               - user profiles, one per caller identity
//	                             data: JSON packed user (name, contact,
//	                             role, audit fields)
//
// Counters:
//
//	N ++ counter name          - durable monotonic id allocators
//	                             data: count of last issued value
//
// Testing:
//
//	Z ++ *various*             - only used by tests
//
// iteration over any pool is in ascending key order, which makes the
// pagination order deterministic across restarts
package storage

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package network - registry network selection
//
// the network name selects the default database and whether test keys
// are acceptable; live keys and test keys are not interchangeable
package network

// names of the networks
const (
	Live    = "live"    // production registry
	Testing = "testing" // shared test registry
	Local   = "local"   // local regression test registry
)

// Valid - check if a network name is recognised
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - check if a network uses test keys
func IsTesting(name string) bool {
	switch name {
	case Testing, Local:
		return true
	default:
		return false
	}
}

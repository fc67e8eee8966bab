// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode a byte slice as a Base58 string
func ToBase58(data []byte) string {
	return base58.Encode(data)
}

// FromBase58 - decode a Base58 string
//
// returns an empty slice on any decode failure
func FromBase58(s string) []byte {
	data, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return data
}

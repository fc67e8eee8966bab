// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// a single instance of each common error so code can compare errors
// and determine their class: invalid, not found, unauthorized, exists
// or process
//
// operations build descriptive per-call errors by casting a formatted
// string to the matching class, e.g.:
//
//	fault.NotFoundError(fmt.Sprintf("deed with id=%d not found", id))
//
// such values still satisfy the class check helpers
package fault

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/deedregistry/deedd/fault"
)

// test that each class only matches its own checker
func TestClassification(t *testing.T) {

	errorList := []struct {
		err          error
		exists       bool
		invalid      bool
		notFound     bool
		process      bool
		unauthorized bool
	}{
		{fault.KeyFileExists, true, false, false, false, false},
		{fault.InvalidCount, false, true, false, false, false},
		{fault.DeedNotFound, false, false, true, false, false},
		{fault.CounterOverflow, false, false, false, true, false},
		{fault.UnauthorizedError("role user may not create deeds"), false, false, false, false, true},
	}

	for i, item := range errorList {
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists mismatch for: %q", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid mismatch for: %q", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found mismatch for: %q", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process mismatch for: %q", i, item.err)
		}
		if fault.IsErrUnauthorized(item.err) != item.unauthorized {
			t.Errorf("%d: unauthorized mismatch for: %q", i, item.err)
		}
	}
}

// dynamically constructed errors must keep their class
func TestDynamicError(t *testing.T) {

	e := fault.NotFoundError(fmt.Sprintf("deed with id=%d not found", 42))
	if !fault.IsErrNotFound(e) {
		t.Errorf("dynamic not found error lost its class")
	}
	if "deed with id=42 not found" != e.Error() {
		t.Errorf("unexpected message: %q", e.Error())
	}
}

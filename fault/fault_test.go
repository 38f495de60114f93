// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/quietbay/ordpool/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrPoolOne     = fault.PoolError("pool one")
	ErrPoolTwo     = fault.PoolError("pool two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the various error classes stay distinct
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		length   bool
		notFound bool
		pool     bool
		process  bool
	}{
		{ErrInvalidOne, true, false, false, false, false},
		{ErrInvalidTwo, true, false, false, false, false},
		{ErrLengthOne, false, true, false, false, false},
		{ErrLengthTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrPoolOne, false, false, false, true, false},
		{ErrPoolTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPool(err) != e.pool {
			t.Errorf("%d: expected 'pool' == %v for err = %v", i, e.pool, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// singletons must compare equal against themselves only
func TestSingletons(t *testing.T) {
	if fault.PoolError("block pool is exhausted") != fault.ErrPoolExhausted {
		t.Error("same class and text does not compare equal")
	}
	if error(fault.ErrPoolExhausted) == error(fault.ErrFrameExpired) {
		t.Error("distinct errors compare equal")
	}
	if "block pool is exhausted" != fault.ErrPoolExhausted.Error() {
		t.Errorf("unexpected message: %q", fault.ErrPoolExhausted.Error())
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/regnet-network/regnetd/fault"
)

var (
	ErrExistsOne        = fault.ExistsError("exists one")
	ErrExistsTwo        = fault.ExistsError("exists two")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrInvalidTwo       = fault.InvalidError("invalid two")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrNotFoundTwo      = fault.NotFoundError("not found two")
	ErrNotAuthorizedOne = fault.NotAuthorizedError("not authorized one")
	ErrNotAuthorizedTwo = fault.NotAuthorizedError("not authorized two")
	ErrProcessOne       = fault.ProcessError("process one")
	ErrProcessTwo       = fault.ProcessError("process two")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		exists        bool
		invalid       bool
		notFound      bool
		notAuthorized bool
		process       bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrNotAuthorizedOne, false, false, false, true, false},
		{ErrNotAuthorizedTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrNotAuthorized(err) != e.notAuthorized {
			t.Errorf("%d: expected 'not authorized' == %v for err = %v", i, e.notAuthorized, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// the taxonomy of the registry state machine maps each failure to one class
func TestRegistryErrorClasses(t *testing.T) {
	if !fault.IsErrNotFound(fault.ErrUserNotFound) {
		t.Error("ErrUserNotFound is not a NotFoundError")
	}
	if !fault.IsErrNotFound(fault.ErrPropertyNotFound) {
		t.Error("ErrPropertyNotFound is not a NotFoundError")
	}
	if !fault.IsErrExists(fault.ErrUserAlreadyExists) {
		t.Error("ErrUserAlreadyExists is not an ExistsError")
	}
	if !fault.IsErrExists(fault.ErrUserAlreadyApproved) {
		t.Error("ErrUserAlreadyApproved is not an ExistsError")
	}
	if !fault.IsErrNotAuthorized(fault.ErrNotPropertyOwner) {
		t.Error("ErrNotPropertyOwner is not a NotAuthorizedError")
	}
	if !fault.IsErrNotAuthorized(fault.ErrUserNotApproved) {
		t.Error("ErrUserNotApproved is not a NotAuthorizedError")
	}
	if !fault.IsErrInvalid(fault.ErrInsufficientFunds) {
		t.Error("ErrInsufficientFunds is not an InvalidError")
	}
	if !fault.IsErrProcess(fault.ErrCorruptedUserRecord) {
		t.Error("ErrCorruptedUserRecord is not a ProcessError")
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package users - the identity registry
//
// creates and approves user records and maintains the credit balance;
// every asset bearing operation elsewhere gates on the approval status
// held here
package users

import (
	"time"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/record"
	"github.com/regnet-network/regnetd/registrar"
	"github.com/regnet-network/regnetd/storage"
	"github.com/regnet-network/regnetd/voucher"
)

// Request - stage a new user record with status Requested
//
// the record is created with a zero credit balance; a record already
// present under the same natural key is rejected, never overwritten
func Request(trx storage.Transaction, callerIdentity string, name string, email string, phoneNumber string, nationalID string) (*record.User, error) {
	if "" == callerIdentity {
		return nil, fault.ErrMissingParameters
	}

	key, err := record.UserKey(name, nationalID)
	if nil != err {
		return nil, err
	}

	if trx.Has(storage.Pool.Users, key) {
		return nil, fault.ErrUserAlreadyExists
	}

	now := time.Now().UTC()
	user := &record.User{
		Name:          name,
		NationalID:    nationalID,
		Email:         email,
		PhoneNumber:   phoneNumber,
		OwnerIdentity: callerIdentity,
		Status:        record.UserRequested,
		CreditBalance: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	packed, err := user.Pack()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Users, key, packed)

	return user, nil
}

// Approve - registrar approval of a requested user
//
// one-time forward transition Requested → Approved; a repeated approval
// is rejected so the status can never be re-stamped
func Approve(trx storage.Transaction, registrarIdentity string, name string, nationalID string) (*record.User, error) {
	if !registrar.IsRegistrar(registrarIdentity) {
		return nil, fault.ErrNotRegistrar
	}

	key, err := record.UserKey(name, nationalID)
	if nil != err {
		return nil, err
	}

	user, err := fetch(trx, key)
	if nil != err {
		return nil, err
	}

	if record.UserApproved == user.Status {
		return nil, fault.ErrUserAlreadyApproved
	}

	user.Status = record.UserApproved
	user.CreditBalance = 0
	user.RegistrarIdentity = registrarIdentity
	user.UpdatedAt = time.Now().UTC()

	packed, err := user.Pack()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Users, key, packed)

	return user, nil
}

// Recharge - add a voucher denomination to an approved user's balance
func Recharge(trx storage.Transaction, name string, nationalID string, voucherID string) (*record.User, error) {
	v, err := voucher.Lookup(voucherID)
	if nil != err {
		return nil, err
	}

	key, err := record.UserKey(name, nationalID)
	if nil != err {
		return nil, err
	}

	user, err := fetch(trx, key)
	if nil != err {
		return nil, err
	}

	if record.UserApproved != user.Status {
		return nil, fault.ErrUserNotApproved
	}

	user.CreditBalance += v.Value
	user.UpdatedAt = time.Now().UTC()

	packed, err := user.Pack()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Users, key, packed)

	return user, nil
}

// View - read-only fetch of a user record outside any transaction
func View(name string, nationalID string) (*record.User, error) {
	key, err := record.UserKey(name, nationalID)
	if nil != err {
		return nil, err
	}
	return fetch(nil, key)
}

// Fetch - load a user record inside a transaction
func Fetch(trx storage.Transaction, name string, nationalID string) (*record.User, error) {
	key, err := record.UserKey(name, nationalID)
	if nil != err {
		return nil, err
	}
	return fetch(trx, key)
}

// FetchApproved - the approval gate for asset bearing operations
//
// a user that cannot be shown to exist and be approved fails the gate
func FetchApproved(trx storage.Transaction, name string, nationalID string) (*record.User, error) {
	user, err := Fetch(trx, name, nationalID)
	if fault.ErrUserNotFound == err {
		return nil, fault.ErrUserNotApproved
	} else if nil != err {
		return nil, err
	}
	if record.UserApproved != user.Status {
		return nil, fault.ErrUserNotApproved
	}
	return user, nil
}

// read and decode one user record
//
// absent → ErrUserNotFound, undecodable → ErrCorruptedUserRecord
func fetch(trx storage.Transaction, key []byte) (*record.User, error) {
	var buffer []byte
	if nil == trx {
		buffer = storage.Pool.Users.Get(key)
	} else {
		buffer = trx.Get(storage.Pool.Users, key)
	}
	if nil == buffer {
		return nil, fault.ErrUserNotFound
	}
	return record.UnpackUser(buffer)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/regnet-network/regnetd/fault"
)

// Transaction - the atomic write set of one registry operation
//
// every read sees staged writes of the same transaction; Commit applies
// the whole set in one batch, Abort discards it untouched
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - transaction over the set of databases
type TransactionData struct {
	sync.Mutex
	inUse  bool
	access []Access
}

func newTransaction(access []Access) Transaction {
	return &TransactionData{
		inUse:  false,
		access: access,
	}
}

// Begin - mark the transaction active
//
// only a single transaction can be in flight; the ledger substitutes
// optimistic versioning for finer grained locking
func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}

	for _, a := range t.access {
		if err := a.Begin(); nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

// Put - stage a write into the transaction
func (t *TransactionData) Put(pool Handle, key []byte, value []byte) {
	pool.put(key, value)
}

// Delete - stage a removal into the transaction
func (t *TransactionData) Delete(pool Handle, key []byte) {
	pool.remove(key)
}

// Get - read a record, staged writes included
func (t *TransactionData) Get(pool Handle, key []byte) []byte {
	return pool.Get(key)
}

// Has - check a record exists, staged writes included
func (t *TransactionData) Has(pool Handle, key []byte) bool {
	return pool.Has(key)
}

// Commit - apply every staged write as a single batch
func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, a := range t.access {
		if err := a.Commit(); nil != err {
			return err
		}
	}

	t.inUse = false
	return nil
}

// Abort - discard every staged write
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, a := range t.access {
		a.Abort()
	}

	t.inUse = false
}

// InUse - check if a transaction is in flight
func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

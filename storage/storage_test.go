// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolReadAbsent(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	assert.Nil(t, Pool.TestData.Get([]byte("no-such-key")), "absent key must read as nil")
	assert.False(t, Pool.TestData.Has([]byte("no-such-key")), "absent key must not exist")
}

func TestTransactionCommit(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "begin transaction")

	trx.Put(Pool.Users, []byte("u1"), []byte("alpha"))
	trx.Put(Pool.Properties, []byte("p1"), []byte("beta"))

	// a transaction must see its own staged writes
	assert.Equal(t, []byte("alpha"), trx.Get(Pool.Users, []byte("u1")), "staged write not visible in transaction")
	assert.True(t, trx.Has(Pool.Properties, []byte("p1")), "staged write not visible in transaction")

	err = trx.Commit()
	assert.Nil(t, err, "commit")

	assert.Equal(t, []byte("alpha"), Pool.Users.Get([]byte("u1")), "committed value missing")
	assert.Equal(t, []byte("beta"), Pool.Properties.Get([]byte("p1")), "committed value missing")
}

func TestTransactionAbortLeavesNoPartialState(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "begin transaction")

	// a multi-record write group faulted mid-sequence
	trx.Put(Pool.Users, []byte("buyer"), []byte("debited"))
	trx.Put(Pool.Users, []byte("seller"), []byte("credited"))
	trx.Put(Pool.Properties, []byte("deed"), []byte("transferred"))
	trx.Abort()

	assert.Nil(t, Pool.Users.Get([]byte("buyer")), "aborted write leaked")
	assert.Nil(t, Pool.Users.Get([]byte("seller")), "aborted write leaked")
	assert.Nil(t, Pool.Properties.Get([]byte("deed")), "aborted write leaked")
}

func TestSingleTransactionInFlight(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "begin transaction")

	_, err = NewDBTransaction()
	assert.NotNil(t, err, "second Begin must fail while one is in flight")

	trx.Abort()

	trx, err = NewDBTransaction()
	assert.Nil(t, err, "begin after abort must succeed")
	trx.Abort()
}

func TestPoolPrefixSeparation(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "begin transaction")
	trx.Put(Pool.Users, []byte("same-key"), []byte("user-value"))
	err = trx.Commit()
	assert.Nil(t, err, "commit")

	assert.Nil(t, Pool.Properties.Get([]byte("same-key")), "pools must not share key space")
}

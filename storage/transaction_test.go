// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/regnet-network/regnetd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)

	trx := newTransaction([]Access{mock})
	return trx, mock, ctl
}

func TestBegin(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)

	err := trx.Begin()
	assert.Equal(t, nil, err, "first time Begin should not return any error")

	err = trx.Begin()
	assert.NotEqual(t, nil, err, "second time Begin should return error")
}

func TestCommitResetsInUse(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(2)
	mock.EXPECT().Commit().Return(nil).Times(1)

	err := trx.Begin()
	assert.Nil(t, err, "begin")
	assert.True(t, trx.InUse(), "transaction should be in use after Begin")

	err = trx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, trx.InUse(), "transaction should be free after Commit")

	err = trx.Begin()
	assert.Nil(t, err, "begin after commit")
}

func TestAbortResetsInUse(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)

	err := trx.Begin()
	assert.Nil(t, err, "begin")

	trx.Abort()
	assert.False(t, trx.InUse(), "transaction should be free after Abort")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/property"
	"github.com/regnet-network/regnetd/record"
	"github.com/regnet-network/regnetd/registrar"
	"github.com/regnet-network/regnetd/storage"
	"github.com/regnet-network/regnetd/users"
	"github.com/regnet-network/regnetd/voucher"
)

const (
	testingDirName    = "testing"
	registrarIdentity = "registrar.regnet"
	citizenIdentity   = "citizen.regnet"
)

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(filepath.Join(testingDirName, "regnet"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = registrar.Initialise([]string{registrarIdentity})
	if nil != err {
		t.Fatalf("registrar initialise error: %s", err)
	}
}

func teardown() {
	_ = registrar.Finalise()
	storage.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// run one staged operation and commit it
func commit(t *testing.T, operation func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	err = operation(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
	return nil
}

// register and approve one user with the requested credit balance
func fundedUser(t *testing.T, name string, nationalID string, vouchers ...string) *record.User {
	err := commit(t, func(trx storage.Transaction) error {
		_, err := users.Request(trx, citizenIdentity, name, nationalID+"@example.com", "555-0100", nationalID)
		return err
	})
	if nil != err {
		t.Fatalf("request user error: %s", err)
	}
	err = commit(t, func(trx storage.Transaction) error {
		_, err := users.Approve(trx, registrarIdentity, name, nationalID)
		return err
	})
	if nil != err {
		t.Fatalf("approve user error: %s", err)
	}
	for _, v := range vouchers {
		if _, err := voucher.Lookup(v); nil != err {
			t.Fatalf("bad voucher in test setup: %s", v)
		}
		err = commit(t, func(trx storage.Transaction) error {
			_, err := users.Recharge(trx, name, nationalID, v)
			return err
		})
		if nil != err {
			t.Fatalf("recharge error: %s", err)
		}
	}
	user, err := users.View(name, nationalID)
	if nil != err {
		t.Fatalf("view user error: %s", err)
	}
	return user
}

// register a title and optionally put it on sale
func listedProperty(t *testing.T, propertyID string, price uint64, ownerName string, ownerNationalID string, onSale bool) *record.Property {
	err := commit(t, func(trx storage.Transaction) error {
		_, err := property.Request(trx, propertyID, price, ownerName, ownerNationalID)
		return err
	})
	if nil != err {
		t.Fatalf("request property error: %s", err)
	}
	if onSale {
		err = commit(t, func(trx storage.Transaction) error {
			_, err := property.UpdateStatus(trx, propertyID, ownerName, ownerNationalID, record.PropertyOnSale)
			return err
		})
		if nil != err {
			t.Fatalf("list property error: %s", err)
		}
	}
	prop, err := property.View(propertyID)
	if nil != err {
		t.Fatalf("view property error: %s", err)
	}
	return prop
}

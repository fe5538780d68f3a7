// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test environment for the RPC services
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/chain"
	"github.com/regnet-network/regnetd/mode"
	"github.com/regnet-network/regnetd/registrar"
	"github.com/regnet-network/regnetd/storage"
)

const (
	LogCategory = "testing"

	// identities used across the RPC tests
	RegistrarIdentity = "registrar.regnet"
	CitizenIdentity   = "citizen.regnet"
)

const dir = "testing"

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(dir)
}

// SetupTestEnvironment - logger, storage, mode and registrar for one test
func SetupTestEnvironment(t *testing.T) {
	SetupTestLogger()

	if err := storage.Initialise(filepath.Join(dir, "regnet"), storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	if err := mode.Initialise(chain.Testing); nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}
	mode.Set(mode.Normal)

	if err := registrar.Initialise([]string{RegistrarIdentity}); nil != err {
		t.Fatalf("registrar initialise error: %s", err)
	}
}

func TeardownTestEnvironment() {
	_ = registrar.Finalise()
	_ = mode.Finalise()
	storage.Finalise()
	TeardownTestLogger()
}

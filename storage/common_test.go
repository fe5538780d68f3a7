// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
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

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func teardownTestLogger() {
	removeFiles()
}

// open a fresh database under the testing directory
func setupTestStorage(t *testing.T) {
	setupTestLogger()

	err := Initialise(filepath.Join(testingDirName, "regnet"), ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardownTestStorage() {
	Finalise()
	teardownTestLogger()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registrar_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/registrar"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	rc := m.Run()
	os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func TestIsRegistrar(t *testing.T) {
	err := registrar.Initialise([]string{"registrar.one", "registrar.two"})
	assert.Nil(t, err, "initialise error")
	defer registrar.Finalise()

	assert.True(t, registrar.IsRegistrar("registrar.one"), "configured identity rejected")
	assert.True(t, registrar.IsRegistrar("registrar.two"), "configured identity rejected")
	assert.False(t, registrar.IsRegistrar("citizen.one"), "unknown identity accepted")
	assert.False(t, registrar.IsRegistrar(""), "empty identity accepted")
}

func TestInitialiseEmpty(t *testing.T) {
	err := registrar.Initialise(nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "empty registrar set accepted")
}

func TestInitialiseTwice(t *testing.T) {
	err := registrar.Initialise([]string{"registrar.one"})
	assert.Nil(t, err, "initialise error")
	defer registrar.Finalise()

	err = registrar.Initialise([]string{"registrar.two"})
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "double initialise accepted")
}

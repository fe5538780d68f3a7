// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registrar - the configured registrar identity set
//
// registrar-only operations check the caller identity against this set
// at the boundary instead of trusting submission conventions
package registrar

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/fault"
)

var globalData struct {
	sync.RWMutex
	log        *logger.L
	identities map[string]struct{}

	// set once during initialise
	initialised bool
}

// Initialise - load the registrar identities from configuration
func Initialise(identities []string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("registrar")
	globalData.log.Info("starting…")

	if 0 == len(identities) {
		globalData.log.Critical("no registrar identities configured")
		return fault.ErrMissingParameters
	}

	globalData.identities = make(map[string]struct{}, len(identities))
	for _, identity := range identities {
		if "" == identity {
			return fault.ErrMissingParameters
		}
		globalData.identities[identity] = struct{}{}
	}
	globalData.log.Infof("registrars: %d", len(globalData.identities))

	globalData.initialised = true

	return nil
}

// Finalise - shutdown registrar handling
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.identities = nil
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// IsRegistrar - check a caller identity belongs to a registrar
func IsRegistrar(identity string) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	_, ok := globalData.identities[identity]
	return ok
}

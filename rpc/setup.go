// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io/ioutil"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/counter"
	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/rpc/certificate"
	"github.com/regnet-network/regnetd/rpc/listeners"
	"github.com/regnet-network/regnetd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	// set once during initialise
	initialised bool
}

var globalData rpcData

// count of active RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the client RPC listener
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	certificatePEM, err := ioutil.ReadFile(rpcConfiguration.Certificate)
	if nil != err {
		log.Errorf("certificate read error: %s", err)
		return err
	}
	keyPEM, err := ioutil.ReadFile(rpcConfiguration.PrivateKey)
	if nil != err {
		log.Errorf("private key read error: %s", err)
		return err
	}

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, certificatePEM, keyPEM)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPCListener(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

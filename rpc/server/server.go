// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - assemble the RPC services into a net/rpc server
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/counter"
	"github.com/regnet-network/regnetd/mode"
	"github.com/regnet-network/regnetd/rpc/node"
	"github.com/regnet-network/regnetd/rpc/properties"
	"github.com/regnet-network/regnetd/rpc/trade"
	"github.com/regnet-network/regnetd/rpc/users"
)

// Create - register all services on a fresh RPC server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(users.New(log, mode.Is))
	_ = server.Register(properties.New(log, mode.Is))
	_ = server.Register(trade.New(log, mode.Is))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}

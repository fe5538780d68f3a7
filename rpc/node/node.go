// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/counter"
	"github.com/regnet-network/regnetd/mode"
	"github.com/regnet-network/regnetd/rpc/ratelimit"
	"github.com/regnet-network/regnetd/voucher"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Registry - type for RPC calls
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	counter *counter.Counter
}

// New - create the node information service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter) *Registry {
	return &Registry{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain    string   `json:"chain"`
	Mode     string   `json:"mode"`
	RPCs     uint64   `json:"rpcs"`
	Vouchers []string `json:"vouchers"`
	Version  string   `json:"version"`
	Uptime   string   `json:"uptime"`
}

// Info - RPC to fetch node status
func (registry *Registry) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(registry.Limiter); nil != err {
		return err
	}

	vouchers := make([]string, 0, 3)
	for _, v := range voucher.All() {
		vouchers = append(vouchers, v.ID)
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = registry.counter.Uint64()
	reply.Vouchers = vouchers
	reply.Version = registry.Version
	reply.Uptime = time.Since(registry.Start).String()
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/exchange"
	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/mode"
	"github.com/regnet-network/regnetd/record"
	"github.com/regnet-network/regnetd/rpc/ratelimit"
	"github.com/regnet-network/regnetd/storage"
)

// Trade - type for the RPC
type Trade struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitTrade = 200
	rateBurstTrade = 100
)

// New - create the trade service
func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Trade {
	return &Trade{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitTrade, rateBurstTrade),
		IsNormalMode: isNormalMode,
	}
}

// PurchaseArguments - arguments for a purchase settlement
type PurchaseArguments struct {
	PropertyID      string `json:"propertyId"`
	BuyerName       string `json:"buyerName"`
	BuyerNationalID string `json:"buyerNationalId"`
}

// PurchaseReply - the three records rewritten by the settlement
type PurchaseReply struct {
	Property record.Property `json:"property"`
	Buyer    record.User     `json:"buyer"`
	Seller   record.User     `json:"seller"`
}

// Purchase - RPC to buy a listed property
func (t *Trade) Purchase(arguments *PurchaseArguments, reply *PurchaseReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if !t.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	t.Log.Infof("Trade.Purchase: %s buyer: %s/%s", arguments.PropertyID, arguments.BuyerName, arguments.BuyerNationalID)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	settlement, err := exchange.Purchase(trx, arguments.PropertyID, arguments.BuyerName, arguments.BuyerNationalID)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Property = *settlement.Property
	reply.Buyer = *settlement.Buyer
	reply.Seller = *settlement.Seller
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/mode"
	"github.com/regnet-network/regnetd/record"
	"github.com/regnet-network/regnetd/rpc/fixtures"
	"github.com/regnet-network/regnetd/rpc/properties"
	"github.com/regnet-network/regnetd/rpc/trade"
	"github.com/regnet-network/regnetd/rpc/users"
)

// create, approve and fund one user
func fundedUser(t *testing.T, name string, nationalID string, vouchers ...string) {
	u := users.New(logger.New(fixtures.LogCategory), mode.Is)

	var reply users.UserReply
	err := u.Register(&users.RegisterArguments{
		Identity:   fixtures.CitizenIdentity,
		Name:       name,
		NationalID: nationalID,
	}, &reply)
	assert.Nil(t, err, "wrong register")

	err = u.Approve(&users.ApproveArguments{
		Identity:   fixtures.RegistrarIdentity,
		Name:       name,
		NationalID: nationalID,
	}, &reply)
	assert.Nil(t, err, "wrong approve")

	for _, v := range vouchers {
		err = u.Recharge(&users.RechargeArguments{
			Name:       name,
			NationalID: nationalID,
			VoucherID:  v,
		}, &reply)
		assert.Nil(t, err, "wrong recharge")
	}
}

// register a title owned by the named user and put it on sale
func listedProperty(t *testing.T, propertyID string, price uint64, ownerName string, ownerNationalID string) {
	p := properties.New(logger.New(fixtures.LogCategory), mode.Is)

	var reply properties.PropertyReply
	err := p.Register(&properties.RegisterArguments{
		PropertyID:      propertyID,
		Price:           price,
		OwnerName:       ownerName,
		OwnerNationalID: ownerNationalID,
	}, &reply)
	assert.Nil(t, err, "wrong register")

	err = p.SetStatus(&properties.StatusArguments{
		PropertyID: propertyID,
		Name:       ownerName,
		NationalID: ownerNationalID,
		Status:     "onSale",
	}, &reply)
	assert.Nil(t, err, "wrong set status")
}

func TestTradePurchase(t *testing.T) {
	fixtures.SetupTestEnvironment(t)
	defer fixtures.TeardownTestEnvironment()

	fundedUser(t, "Asha", "AAD1", "upg100")
	fundedUser(t, "Badri", "BBD2", "upg500")
	listedProperty(t, "PLOT-77", 300, "Asha", "AAD1")

	tr := trade.New(logger.New(fixtures.LogCategory), mode.Is)

	var reply trade.PurchaseReply
	err := tr.Purchase(&trade.PurchaseArguments{
		PropertyID:      "PLOT-77",
		BuyerName:       "Badri",
		BuyerNationalID: "BBD2",
	}, &reply)
	assert.Nil(t, err, "wrong purchase")
	assert.Equal(t, uint64(200), reply.Buyer.CreditBalance, "wrong buyer balance")
	assert.Equal(t, uint64(400), reply.Seller.CreditBalance, "wrong seller balance")
	assert.Equal(t, "Badri", reply.Property.Owner.Name, "wrong new owner")
	assert.Equal(t, record.PropertyRegistered, reply.Property.Status, "wrong status")
}

func TestTradePurchaseNotForSale(t *testing.T) {
	fixtures.SetupTestEnvironment(t)
	defer fixtures.TeardownTestEnvironment()

	fundedUser(t, "Asha", "AAD1")
	fundedUser(t, "Badri", "BBD2", "upg500")

	p := properties.New(logger.New(fixtures.LogCategory), mode.Is)
	var propReply properties.PropertyReply
	err := p.Register(&properties.RegisterArguments{
		PropertyID:      "PLOT-77",
		Price:           300,
		OwnerName:       "Asha",
		OwnerNationalID: "AAD1",
	}, &propReply)
	assert.Nil(t, err, "wrong register")

	tr := trade.New(logger.New(fixtures.LogCategory), mode.Is)

	var reply trade.PurchaseReply
	err = tr.Purchase(&trade.PurchaseArguments{
		PropertyID:      "PLOT-77",
		BuyerName:       "Badri",
		BuyerNationalID: "BBD2",
	}, &reply)
	assert.Equal(t, fault.ErrPropertyNotForSale, err, "wrong sale error")
}

func TestTradePurchaseWhenNotInNormal(t *testing.T) {
	fixtures.SetupTestEnvironment(t)
	defer fixtures.TeardownTestEnvironment()

	mode.Set(mode.Resynchronise)

	tr := trade.New(logger.New(fixtures.LogCategory), mode.Is)

	var reply trade.PurchaseReply
	err := tr.Purchase(&trade.PurchaseArguments{
		PropertyID:      "PLOT-77",
		BuyerName:       "Badri",
		BuyerNationalID: "BBD2",
	}, &reply)
	assert.Equal(t, fault.ErrNotAvailableDuringSynchronise, err, "wrong mode error")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package exchange - atomic purchase settlement
//
// moves title and credit in one staged write set so a settlement either
// lands whole or not at all
package exchange

import (
	"time"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/property"
	"github.com/regnet-network/regnetd/record"
	"github.com/regnet-network/regnetd/storage"
	"github.com/regnet-network/regnetd/users"
)

// Settlement - the three records rewritten by a completed purchase
type Settlement struct {
	Property *record.Property `json:"property"`
	Buyer    *record.User     `json:"buyer"`
	Seller   *record.User     `json:"seller"`
}

// Purchase - transfer a listed title to the buyer
//
// every precondition is evaluated before the first write is staged:
//
//	buyer approved, title exists, not a self purchase, title OnSale,
//	buyer balance strictly above the price, seller record loadable
//
// the settlement then debits the buyer, credits the seller and
// re-titles the property to the buyer with the listing closed
func Purchase(trx storage.Transaction, propertyID string, buyerName string, buyerNationalID string) (*Settlement, error) {
	buyer, err := users.FetchApproved(trx, buyerName, buyerNationalID)
	if nil != err {
		return nil, err
	}

	prop, err := property.Fetch(trx, propertyID)
	if nil != err {
		return nil, err
	}

	if buyer.Name == prop.Owner.Name && buyer.NationalID == prop.Owner.NationalID {
		return nil, fault.ErrSelfPurchase
	}

	if record.PropertyOnSale != prop.Status {
		return nil, fault.ErrPropertyNotForSale
	}

	if buyer.CreditBalance <= prop.Price {
		return nil, fault.ErrInsufficientFunds
	}

	seller, err := users.Fetch(trx, prop.Owner.Name, prop.Owner.NationalID)
	if nil != err {
		return nil, err
	}

	now := time.Now().UTC()

	buyer.CreditBalance -= prop.Price
	buyer.UpdatedAt = now

	seller.CreditBalance += prop.Price
	seller.UpdatedAt = now

	prop.Owner = record.OwnerReference{
		Name:       buyer.Name,
		NationalID: buyer.NationalID,
	}
	prop.Status = record.PropertyRegistered
	prop.UpdatedAt = now

	buyerKey, err := buyer.Key()
	if nil != err {
		return nil, err
	}
	sellerKey, err := seller.Key()
	if nil != err {
		return nil, err
	}
	propertyKey, err := prop.Key()
	if nil != err {
		return nil, err
	}

	packedBuyer, err := buyer.Pack()
	if nil != err {
		return nil, err
	}
	packedSeller, err := seller.Pack()
	if nil != err {
		return nil, err
	}
	packedProperty, err := prop.Pack()
	if nil != err {
		return nil, err
	}

	trx.Put(storage.Pool.Users, buyerKey, packedBuyer)
	trx.Put(storage.Pool.Users, sellerKey, packedSeller)
	trx.Put(storage.Pool.Properties, propertyKey, packedProperty)

	return &Settlement{
		Property: prop,
		Buyer:    buyer,
		Seller:   seller,
	}, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package property - the property title registry
//
// records property titles owned by approved users; the sale listing
// flag lives on the title record and is flipped only by the owner
package property

import (
	"time"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/record"
	"github.com/regnet-network/regnetd/registrar"
	"github.com/regnet-network/regnetd/storage"
	"github.com/regnet-network/regnetd/users"
)

// Request - stage a new property title for an approved owner
func Request(trx storage.Transaction, propertyID string, price uint64, ownerName string, ownerNationalID string) (*record.Property, error) {
	owner, err := users.FetchApproved(trx, ownerName, ownerNationalID)
	if nil != err {
		return nil, err
	}

	if 0 == price {
		return nil, fault.ErrInvalidPrice
	}

	key, err := record.PropertyKey(propertyID)
	if nil != err {
		return nil, err
	}

	if trx.Has(storage.Pool.Properties, key) {
		return nil, fault.ErrPropertyAlreadyExists
	}

	now := time.Now().UTC()
	prop := &record.Property{
		PropertyID: propertyID,
		Owner: record.OwnerReference{
			Name:       owner.Name,
			NationalID: owner.NationalID,
		},
		Price:     price,
		Status:    record.PropertyRegistered,
		CreatedAt: now,
		UpdatedAt: now,
	}

	packed, err := prop.Pack()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Properties, key, packed)

	return prop, nil
}

// Approve - registrar endorsement of a property title
//
// stamps the approving registrar and forces the status back to
// Registered; the title stays off the market until the owner lists it
func Approve(trx storage.Transaction, registrarIdentity string, propertyID string) (*record.Property, error) {
	if !registrar.IsRegistrar(registrarIdentity) {
		return nil, fault.ErrNotRegistrar
	}

	key, err := record.PropertyKey(propertyID)
	if nil != err {
		return nil, err
	}

	prop, err := fetch(trx, key)
	if nil != err {
		return nil, err
	}

	prop.Status = record.PropertyRegistered
	prop.ApprovedByIdentity = registrarIdentity
	prop.UpdatedAt = time.Now().UTC()

	packed, err := prop.Pack()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Properties, key, packed)

	return prop, nil
}

// UpdateStatus - owner operated listing switch
//
// only the recorded owner may flip a title between Registered and
// OnSale; any other caller is rejected without reading further
func UpdateStatus(trx storage.Transaction, propertyID string, callerName string, callerNationalID string, status record.PropertyStatus) (*record.Property, error) {
	caller, err := users.FetchApproved(trx, callerName, callerNationalID)
	if nil != err {
		return nil, err
	}

	if record.PropertyRegistered != status && record.PropertyOnSale != status {
		return nil, fault.ErrInvalidPropertyStatus
	}

	key, err := record.PropertyKey(propertyID)
	if nil != err {
		return nil, err
	}

	prop, err := fetch(trx, key)
	if nil != err {
		return nil, err
	}

	if caller.Name != prop.Owner.Name || caller.NationalID != prop.Owner.NationalID {
		return nil, fault.ErrNotPropertyOwner
	}

	prop.Status = status
	prop.UpdatedAt = time.Now().UTC()

	packed, err := prop.Pack()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Properties, key, packed)

	return prop, nil
}

// View - read-only fetch of a property record outside any transaction
func View(propertyID string) (*record.Property, error) {
	key, err := record.PropertyKey(propertyID)
	if nil != err {
		return nil, err
	}
	return fetch(nil, key)
}

// Fetch - load a property record inside a transaction
func Fetch(trx storage.Transaction, propertyID string) (*record.Property, error) {
	key, err := record.PropertyKey(propertyID)
	if nil != err {
		return nil, err
	}
	return fetch(trx, key)
}

// read and decode one property record
//
// absent → ErrPropertyNotFound, undecodable → ErrCorruptedPropertyRecord
func fetch(trx storage.Transaction, key []byte) (*record.Property, error) {
	var buffer []byte
	if nil == trx {
		buffer = storage.Pool.Properties.Get(key)
	} else {
		buffer = trx.Get(storage.Pool.Properties, key)
	}
	if nil == buffer {
		return nil, fault.ErrPropertyNotFound
	}
	return record.UnpackProperty(buffer)
}

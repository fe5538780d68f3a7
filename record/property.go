// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"
	"time"

	"github.com/regnet-network/regnetd/compositekey"
	"github.com/regnet-network/regnetd/fault"
)

// OwnerReference - structured reference to the owning user
//
// stored in place of the legacy concatenated owner string so the owner
// record is located through the same key derivation as a direct lookup
type OwnerReference struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
}

// Key - composite ledger key of the referenced user record
func (owner OwnerReference) Key() ([]byte, error) {
	return UserKey(owner.Name, owner.NationalID)
}

// Property - a titled asset
type Property struct {
	PropertyID         string         `json:"propertyId"`
	Owner              OwnerReference `json:"owner"`
	Price              uint64         `json:"price"`
	Status             PropertyStatus `json:"status"`
	ApprovedByIdentity string         `json:"approvedByIdentity,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// PropertyKey - composite ledger key for a property id
func PropertyKey(propertyID string) ([]byte, error) {
	return compositekey.Create(compositekey.PropertyNamespace, propertyID)
}

// Key - composite ledger key of this record
func (property *Property) Key() ([]byte, error) {
	return PropertyKey(property.PropertyID)
}

// Pack - serialise for ledger storage
func (property *Property) Pack() ([]byte, error) {
	return json.Marshal(property)
}

// UnpackProperty - decode a stored payload
//
// same contract as UnpackUser: undecodable or out-of-range payloads are
// corrupted, absence is the caller's case
func UnpackProperty(buffer []byte) (*Property, error) {
	property := &Property{}
	if err := json.Unmarshal(buffer, property); nil != err {
		return nil, fault.ErrCorruptedPropertyRecord
	}
	if "" == property.PropertyID ||
		"" == property.Owner.Name ||
		"" == property.Owner.NationalID ||
		PropertyNothing == property.Status ||
		0 == property.Price {
		return nil, fault.ErrCorruptedPropertyRecord
	}
	return property, nil
}

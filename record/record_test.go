// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/record"
)

func TestUserPackUnpack(t *testing.T) {
	now := time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC)

	user := &record.User{
		Name:          "Asha",
		NationalID:    "AAD1",
		Email:         "asha@example.com",
		PhoneNumber:   "555-0100",
		OwnerIdentity: "x509::asha",
		Status:        record.UserRequested,
		CreditBalance: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	packed, err := user.Pack()
	assert.Nil(t, err, "pack")
	assert.Contains(t, string(packed), `"status":"Requested"`, "status must serialise as text")

	unpacked, err := record.UnpackUser(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, user.Name, unpacked.Name, "name mismatch")
	assert.Equal(t, user.NationalID, unpacked.NationalID, "national id mismatch")
	assert.Equal(t, user.Email, unpacked.Email, "email mismatch")
	assert.Equal(t, user.PhoneNumber, unpacked.PhoneNumber, "phone mismatch")
	assert.Equal(t, user.OwnerIdentity, unpacked.OwnerIdentity, "owner identity mismatch")
	assert.Equal(t, user.Status, unpacked.Status, "status mismatch")
	assert.Equal(t, user.CreditBalance, unpacked.CreditBalance, "balance mismatch")
	assert.True(t, user.CreatedAt.Equal(unpacked.CreatedAt), "createdAt mismatch")
	assert.True(t, user.UpdatedAt.Equal(unpacked.UpdatedAt), "updatedAt mismatch")
}

func TestUnpackUserMalformed(t *testing.T) {
	malformed := [][]byte{
		[]byte(``),
		[]byte(`garbage`),
		[]byte(`{"name":"Asha"}`),
		[]byte(`{"name":"Asha","nationalId":"AAD1","status":"Rejected"}`),
		[]byte(`[1,2,3]`),
	}

	for i, buffer := range malformed {
		_, err := record.UnpackUser(buffer)
		assert.Equal(t, fault.ErrCorruptedUserRecord, err, "case %d accepted a malformed payload", i)
	}
}

func TestPropertyPackUnpack(t *testing.T) {
	now := time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC)

	property := &record.Property{
		PropertyID: "P1",
		Owner: record.OwnerReference{
			Name:       "Asha",
			NationalID: "AAD1",
		},
		Price:     300,
		Status:    record.PropertyOnSale,
		CreatedAt: now,
		UpdatedAt: now,
	}

	packed, err := property.Pack()
	assert.Nil(t, err, "pack")
	assert.Contains(t, string(packed), `"status":"OnSale"`, "status must serialise as text")

	unpacked, err := record.UnpackProperty(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, property.PropertyID, unpacked.PropertyID, "property id mismatch")
	assert.Equal(t, property.Owner, unpacked.Owner, "owner mismatch")
	assert.Equal(t, property.Price, unpacked.Price, "price mismatch")
	assert.Equal(t, property.Status, unpacked.Status, "status mismatch")
	assert.True(t, property.CreatedAt.Equal(unpacked.CreatedAt), "createdAt mismatch")
	assert.True(t, property.UpdatedAt.Equal(unpacked.UpdatedAt), "updatedAt mismatch")
}

func TestUnpackPropertyMalformed(t *testing.T) {
	malformed := [][]byte{
		[]byte(``),
		[]byte(`{"propertyId":"P1"}`),
		[]byte(`{"propertyId":"P1","owner":{"name":"Asha","nationalId":"AAD1"},"price":0,"status":"Registered"}`),
		[]byte(`{"propertyId":"P1","owner":{"name":"Asha","nationalId":"AAD1"},"price":10,"status":"burned"}`),
	}

	for i, buffer := range malformed {
		_, err := record.UnpackProperty(buffer)
		assert.Equal(t, fault.ErrCorruptedPropertyRecord, err, "case %d accepted a malformed payload", i)
	}
}

func TestOwnerReferenceKeyMatchesUserKey(t *testing.T) {
	owner := record.OwnerReference{Name: "Asha", NationalID: "AAD1"}

	ownerKey, err := owner.Key()
	assert.Nil(t, err, "owner key")

	userKey, err := record.UserKey("Asha", "AAD1")
	assert.Nil(t, err, "user key")

	assert.Equal(t, userKey, ownerKey, "owner reference must resolve through the same key derivation")
}

func TestPropertyStatusBoundary(t *testing.T) {
	status, err := record.PropertyStatusFromString("OnSale")
	assert.Nil(t, err, "valid status rejected")
	assert.Equal(t, record.PropertyOnSale, status, "wrong status value")

	status, err = record.PropertyStatusFromString("registered")
	assert.Nil(t, err, "case folding is accepted at the boundary")
	assert.Equal(t, record.PropertyRegistered, status, "wrong status value")

	_, err = record.PropertyStatusFromString("Sold")
	assert.Equal(t, fault.ErrInvalidPropertyStatus, err, "out of range status accepted")
}

func TestUserStatusMonotonicText(t *testing.T) {
	status, err := record.UserStatusFromString("Approved")
	assert.Nil(t, err, "valid status rejected")
	assert.Equal(t, record.UserApproved, status, "wrong status value")

	_, err = record.UserStatusFromString("Revoked")
	assert.NotNil(t, err, "out of range status accepted")
}

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

// User - a network participant
//
// the natural key is (name, nationalId); both are immutable after
// creation as is the identity of the creating caller
type User struct {
	Name              string     `json:"name"`
	NationalID        string     `json:"nationalId"`
	Email             string     `json:"email"`
	PhoneNumber       string     `json:"phoneNumber"`
	OwnerIdentity     string     `json:"ownerIdentity"`
	Status            UserStatus `json:"status"`
	CreditBalance     uint64     `json:"creditBalance"`
	RegistrarIdentity string     `json:"registrarIdentity,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// UserKey - composite ledger key for a user natural key
func UserKey(name string, nationalID string) ([]byte, error) {
	return compositekey.Create(compositekey.UserNamespace, name, nationalID)
}

// Key - composite ledger key of this record
func (user *User) Key() ([]byte, error) {
	return UserKey(user.Name, user.NationalID)
}

// Pack - serialise for ledger storage
func (user *User) Pack() ([]byte, error) {
	return json.Marshal(user)
}

// UnpackUser - decode a stored payload
//
// a payload that cannot be decoded, or that decodes to a record outside
// the valid state space, is reported as corrupted; absence is the
// caller's case to handle
func UnpackUser(buffer []byte) (*User, error) {
	user := &User{}
	if err := json.Unmarshal(buffer, user); nil != err {
		return nil, fault.ErrCorruptedUserRecord
	}
	if "" == user.Name || "" == user.NationalID || UserNothing == user.Status {
		return nil, fault.ErrCorruptedUserRecord
	}
	return user, nil
}

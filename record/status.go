// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/fault"
)

// UserStatus - user lifecycle enumeration
type UserStatus uint64

// possible user status values
//
// the status only ever moves forward: Requested → Approved
const (
	UserNothing   UserStatus = iota // this must be the first value
	UserRequested UserStatus = iota
	UserApproved  UserStatus = iota
	userMaximum   UserStatus = iota
)

// PropertyStatus - property lifecycle enumeration
type PropertyStatus uint64

// possible property status values
//
// Registered → OnSale by owner action, OnSale → Registered by purchase
const (
	PropertyNothing    PropertyStatus = iota // this must be the first value
	PropertyRegistered PropertyStatus = iota
	PropertyOnSale     PropertyStatus = iota
	propertyMaximum    PropertyStatus = iota
)

// internal conversion
func userStatusToString(s UserStatus) ([]byte, error) {
	switch s {
	case UserNothing:
		return []byte{}, nil
	case UserRequested:
		return []byte("Requested"), nil
	case UserApproved:
		return []byte("Approved"), nil
	default:
		return []byte{}, fault.ErrCorruptedUserRecord
	}
}

// UserStatusFromString - convert a string to a user status
func UserStatusFromString(in string) (UserStatus, error) {
	switch strings.ToLower(in) {
	case "":
		return UserNothing, nil
	case "requested":
		return UserRequested, nil
	case "approved":
		return UserApproved, nil
	default:
		return UserNothing, fault.ErrCorruptedUserRecord
	}
}

// String - convert a user status to its string form
func (s UserStatus) String() string {
	t, err := userStatusToString(s)
	if nil != err {
		logger.Panicf("invalid user status enumeration: %d", s)
	}
	return string(t)
}

// GoString - convert enum value and name, for debugging
func (s UserStatus) GoString() string {
	return fmt.Sprintf("<UserStatus#%d:%q>", uint64(s), s.String())
}

// MarshalText - convert a user status into JSON
func (s UserStatus) MarshalText() ([]byte, error) {
	return userStatusToString(s)
}

// UnmarshalText - convert a JSON string to a user status
func (s *UserStatus) UnmarshalText(text []byte) error {
	v, err := UserStatusFromString(string(text))
	if nil != err {
		return err
	}
	*s = v
	return nil
}

// internal conversion
func propertyStatusToString(s PropertyStatus) ([]byte, error) {
	switch s {
	case PropertyNothing:
		return []byte{}, nil
	case PropertyRegistered:
		return []byte("Registered"), nil
	case PropertyOnSale:
		return []byte("OnSale"), nil
	default:
		return []byte{}, fault.ErrCorruptedPropertyRecord
	}
}

// PropertyStatusFromString - convert a string to a property status
//
// this is also the boundary check for caller supplied status values:
// anything outside the closed enumeration is rejected
func PropertyStatusFromString(in string) (PropertyStatus, error) {
	switch strings.ToLower(in) {
	case "":
		return PropertyNothing, nil
	case "registered":
		return PropertyRegistered, nil
	case "onsale":
		return PropertyOnSale, nil
	default:
		return PropertyNothing, fault.ErrInvalidPropertyStatus
	}
}

// String - convert a property status to its string form
func (s PropertyStatus) String() string {
	t, err := propertyStatusToString(s)
	if nil != err {
		logger.Panicf("invalid property status enumeration: %d", s)
	}
	return string(t)
}

// GoString - convert enum value and name, for debugging
func (s PropertyStatus) GoString() string {
	return fmt.Sprintf("<PropertyStatus#%d:%q>", uint64(s), s.String())
}

// MarshalText - convert a property status into JSON
func (s PropertyStatus) MarshalText() ([]byte, error) {
	return propertyStatusToString(s)
}

// UnmarshalText - convert a JSON string to a property status
func (s *PropertyStatus) UnmarshalText(text []byte) error {
	v, err := PropertyStatusFromString(string(text))
	if nil != err {
		return fault.ErrCorruptedPropertyRecord
	}
	*s = v
	return nil
}

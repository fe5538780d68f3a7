// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compositekey - deterministic ledger key derivation
//
// A composite key is a namespace tag plus an ordered list of natural
// key components joined with a NUL separator.  The separator may not
// occur inside any component so distinct inputs can never collide.
package compositekey

import (
	"strings"

	"github.com/regnet-network/regnetd/fault"
)

// namespaces for all records held in the registry
const (
	UserNamespace     = "regnet.users"
	PropertyNamespace = "regnet.properties"
)

// component separator, disallowed inside namespace and components
const separator = "\x00"

// Create - derive the ledger key for a namespace and its ordered
// natural key components
//
// identical inputs always produce identical keys and any change to
// namespace or any single component produces a different key
func Create(namespace string, components ...string) ([]byte, error) {
	if !validComponent(namespace) || 0 == len(components) {
		return nil, fault.ErrInvalidKeyComponent
	}

	key := separator + namespace
	for _, component := range components {
		if !validComponent(component) {
			return nil, fault.ErrInvalidKeyComponent
		}
		key += separator + component
	}

	return []byte(key + separator), nil
}

func validComponent(s string) bool {
	return "" != s && !strings.Contains(s, separator)
}

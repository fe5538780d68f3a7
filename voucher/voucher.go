// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package voucher - the fixed table of credit vouchers
//
// a recharge presents a voucher id standing in for an external bank
// transaction; only the fixed denominations below are honoured
package voucher

import (
	"github.com/regnet-network/regnetd/fault"
)

// Voucher - one credit denomination
type Voucher struct {
	ID    string `json:"id"`
	Value uint64 `json:"value"`
}

// the denominations honoured by recharge
var table = []Voucher{
	{ID: "upg100", Value: 100},
	{ID: "upg500", Value: 500},
	{ID: "upg1000", Value: 1000},
}

// Lookup - resolve a voucher id to its credit value
func Lookup(id string) (Voucher, error) {
	for _, v := range table {
		if v.ID == id {
			return v, nil
		}
	}
	return Voucher{}, fault.ErrInvalidVoucher
}

// All - the denominations, for display by clients
func All() []Voucher {
	result := make([]Voucher, len(table))
	copy(result, table)
	return result
}

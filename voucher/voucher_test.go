// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package voucher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/voucher"
)

func TestLookup(t *testing.T) {
	testData := []struct {
		id    string
		value uint64
	}{
		{"upg100", 100},
		{"upg500", 500},
		{"upg1000", 1000},
	}

	for _, item := range testData {
		v, err := voucher.Lookup(item.id)
		assert.Nil(t, err, "valid voucher rejected: %s", item.id)
		assert.Equal(t, item.value, v.Value, "wrong value for: %s", item.id)
	}
}

func TestLookupInvalid(t *testing.T) {
	for _, id := range []string{"", "bogus", "upg200", "UPG100"} {
		_, err := voucher.Lookup(id)
		assert.Equal(t, fault.ErrInvalidVoucher, err, "invalid voucher accepted: %q", id)
	}
}

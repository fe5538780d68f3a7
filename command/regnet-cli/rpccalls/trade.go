// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regnet-network/regnetd/rpc/trade"
)

// Purchase - buy a listed property
func (client *Client) Purchase(propertyID string, buyerName string, buyerNationalID string) (*trade.PurchaseReply, error) {

	purchaseArgs := trade.PurchaseArguments{
		PropertyID:      propertyID,
		BuyerName:       buyerName,
		BuyerNationalID: buyerNationalID,
	}

	client.printJson("Purchase Request", purchaseArgs)

	var reply trade.PurchaseReply
	err := client.client.Call("Trade.Purchase", purchaseArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Purchase Reply", reply)

	return &reply, nil
}

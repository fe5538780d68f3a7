// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regnet-network/regnetd/rpc/node"
)

// GetInfo - fetch the node status
func (client *Client) GetInfo() (*node.InfoReply, error) {

	var reply node.InfoReply
	err := client.client.Call("Registry.Info", node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return &reply, nil
}

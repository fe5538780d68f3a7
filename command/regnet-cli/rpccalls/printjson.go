// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// print out a JSON block when verbose is set
func (client *Client) printJson(title string, message interface{}) {
	if !client.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: error: %s\n", title, err)
		return
	}

	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
//
// requests are transported over TLS; each service applies its own rate
// limit and rejects mutating calls unless the node is in normal mode
package rpc

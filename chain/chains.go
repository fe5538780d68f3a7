// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Regnet  = "regnet"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Regnet, Testing, Local:
		return true
	default:
		return false
	}
}

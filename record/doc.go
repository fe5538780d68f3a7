// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the state records of the registry
//
// a User record identifies a network participant, a Property record a
// titled asset; both are stored as JSON under their composite key and
// both carry a closed status enumeration
//
// records are decoded with a strict unpack that distinguishes a
// malformed payload from an absent one, so a corrupted ledger entry
// surfaces as its own error instead of a crash
package record

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database containing a number of pools,
// one pool per record namespace, each distinguished by a single byte
// key prefix
//
// the registry state machine never writes a pool directly; every
// mutation is staged on a Transaction which accumulates a write set
// and commits it as one LevelDB batch, so a multi-record operation
// either applies completely or not at all
package storage

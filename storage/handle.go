// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Handle - scoped read access to one pool; writes go through a Transaction
type Handle interface {
	Get(key []byte) []byte
	Has(key []byte) bool

	// staging, only reachable from a Transaction
	put(key []byte, value []byte)
	remove(key []byte)
}

// PoolHandle - the name space of a database prefix
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// returns nil if the key is absent
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		logger.Panic("pool.Get nil data access")
		return nil
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return false
	}
	value, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// stage a key/value pair, only the enclosing transaction commits it
func (p *PoolHandle) put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		logger.Panic("pool.put nil data access")
		return
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

// stage a key removal
func (p *PoolHandle) remove(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		logger.Panic("pool.remove nil data access")
		return
	}
	p.dataAccess.Delete(p.prefixKey(key))
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/regnet-network/regnetd/fault"
)

// Access - staged access to one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Put([]byte, []byte)
	Delete([]byte)
}

// AccessData - the batch and its read-through cache for one database
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

// Commit - write the whole staged batch in one shot
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	if nil != err {
		return err
	}
	d.batch.Reset()
	d.inUse = false
	return nil
}

func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, found := d.getFromCache(key)
	if found {
		return val, nil
	}
	return d.getFromDB(key)
}

func (d *AccessData) getFromCache(key []byte) ([]byte, bool) {
	return d.cache.Get(string(key))
}

func (d *AccessData) getFromDB(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, found := d.getFromCache(key)
	if found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - throw away the staged write set
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

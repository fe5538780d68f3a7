// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package properties

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/mode"
	"github.com/regnet-network/regnetd/property"
	"github.com/regnet-network/regnetd/record"
	"github.com/regnet-network/regnetd/rpc/ratelimit"
	"github.com/regnet-network/regnetd/storage"
)

// Properties - type for the RPC
type Properties struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitProperties = 200
	rateBurstProperties = 100
)

// New - create the properties service
func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Properties {
	return &Properties{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitProperties, rateBurstProperties),
		IsNormalMode: isNormalMode,
	}
}

// PropertyReply - the property record resulting from a request
type PropertyReply struct {
	Property record.Property `json:"property"`
}

// ---

// RegisterArguments - arguments for registering a new property
type RegisterArguments struct {
	PropertyID      string `json:"propertyId"`
	Price           uint64 `json:"price"`
	OwnerName       string `json:"ownerName"`
	OwnerNationalID string `json:"ownerNationalId"`
}

// Register - RPC to request a new property registration
func (p *Properties) Register(arguments *RegisterArguments, reply *PropertyReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if !p.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	p.Log.Infof("Properties.Register: %s owner: %s/%s", arguments.PropertyID, arguments.OwnerName, arguments.OwnerNationalID)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	prop, err := property.Request(trx, arguments.PropertyID, arguments.Price, arguments.OwnerName, arguments.OwnerNationalID)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Property = *prop
	return nil
}

// ---

// ApproveArguments - arguments for a registrar endorsement
type ApproveArguments struct {
	Identity   string `json:"identity"`
	PropertyID string `json:"propertyId"`
}

// Approve - RPC for a registrar to endorse a property title
func (p *Properties) Approve(arguments *ApproveArguments, reply *PropertyReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if !p.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	p.Log.Infof("Properties.Approve: %s", arguments.PropertyID)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	prop, err := property.Approve(trx, arguments.Identity, arguments.PropertyID)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Property = *prop
	return nil
}

// ---

// StatusArguments - arguments for the owner listing switch
type StatusArguments struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	Status     string `json:"status"`
}

// SetStatus - RPC for the owner to list or delist a property
func (p *Properties) SetStatus(arguments *StatusArguments, reply *PropertyReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if !p.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	p.Log.Infof("Properties.SetStatus: %s status: %s", arguments.PropertyID, arguments.Status)

	status, err := record.PropertyStatusFromString(arguments.Status)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	prop, err := property.UpdateStatus(trx, arguments.PropertyID, arguments.Name, arguments.NationalID, status)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Property = *prop
	return nil
}

// ---

// GetArguments - arguments to fetch one property record
type GetArguments struct {
	PropertyID string `json:"propertyId"`
}

// Get - RPC to fetch a property record
func (p *Properties) Get(arguments *GetArguments, reply *PropertyReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if !p.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	p.Log.Infof("Properties.Get: %s", arguments.PropertyID)

	prop, err := property.View(arguments.PropertyID)
	if nil != err {
		return err
	}

	reply.Property = *prop
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package users

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet-network/regnetd/fault"
	"github.com/regnet-network/regnetd/mode"
	"github.com/regnet-network/regnetd/record"
	"github.com/regnet-network/regnetd/rpc/ratelimit"
	"github.com/regnet-network/regnetd/storage"
	"github.com/regnet-network/regnetd/users"
)

// Users - type for the RPC
type Users struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitUsers = 200
	rateBurstUsers = 100
)

// New - create the users service
func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Users {
	return &Users{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitUsers, rateBurstUsers),
		IsNormalMode: isNormalMode,
	}
}

// UserReply - the user record resulting from a request
type UserReply struct {
	User record.User `json:"user"`
}

// ---

// RegisterArguments - arguments for registering a new user
type RegisterArguments struct {
	Identity    string `json:"identity"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	NationalID  string `json:"nationalId"`
}

// Register - RPC to request a new user registration
func (u *Users) Register(arguments *RegisterArguments, reply *UserReply) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	if !u.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	u.Log.Infof("Users.Register: %s/%s", arguments.Name, arguments.NationalID)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	user, err := users.Request(trx, arguments.Identity, arguments.Name, arguments.Email, arguments.PhoneNumber, arguments.NationalID)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.User = *user
	return nil
}

// ---

// ApproveArguments - arguments for a registrar approval
type ApproveArguments struct {
	Identity   string `json:"identity"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
}

// Approve - RPC for a registrar to approve a requested user
func (u *Users) Approve(arguments *ApproveArguments, reply *UserReply) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	if !u.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	u.Log.Infof("Users.Approve: %s/%s", arguments.Name, arguments.NationalID)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	user, err := users.Approve(trx, arguments.Identity, arguments.Name, arguments.NationalID)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.User = *user
	return nil
}

// ---

// RechargeArguments - arguments for a voucher recharge
type RechargeArguments struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	VoucherID  string `json:"voucherId"`
}

// Recharge - RPC to add a voucher denomination to a user balance
func (u *Users) Recharge(arguments *RechargeArguments, reply *UserReply) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	if !u.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	u.Log.Infof("Users.Recharge: %s/%s voucher: %s", arguments.Name, arguments.NationalID, arguments.VoucherID)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	user, err := users.Recharge(trx, arguments.Name, arguments.NationalID, arguments.VoucherID)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.User = *user
	return nil
}

// ---

// GetArguments - arguments to fetch one user record
type GetArguments struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
}

// Get - RPC to fetch a user record
func (u *Users) Get(arguments *GetArguments, reply *UserReply) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	if !u.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringSynchronise
	}

	u.Log.Infof("Users.Get: %s/%s", arguments.Name, arguments.NationalID)

	user, err := users.View(arguments.Name, arguments.NationalID)
	if nil != err {
		return err
	}

	reply.User = *user
	return nil
}

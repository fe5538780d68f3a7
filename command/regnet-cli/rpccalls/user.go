// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regnet-network/regnetd/rpc/users"
)

// UserData - data for a user registration request
type UserData struct {
	Identity    string
	Name        string
	Email       string
	PhoneNumber string
	NationalID  string
}

// RegisterUser - request a new user registration
func (client *Client) RegisterUser(userConfig *UserData) (*users.UserReply, error) {

	registerArgs := users.RegisterArguments{
		Identity:    userConfig.Identity,
		Name:        userConfig.Name,
		Email:       userConfig.Email,
		PhoneNumber: userConfig.PhoneNumber,
		NationalID:  userConfig.NationalID,
	}

	client.printJson("RegisterUser Request", registerArgs)

	var reply users.UserReply
	err := client.client.Call("Users.Register", registerArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("RegisterUser Reply", reply)

	return &reply, nil
}

// ApproveUser - registrar approval of a requested user
func (client *Client) ApproveUser(identity string, name string, nationalID string) (*users.UserReply, error) {

	approveArgs := users.ApproveArguments{
		Identity:   identity,
		Name:       name,
		NationalID: nationalID,
	}

	client.printJson("ApproveUser Request", approveArgs)

	var reply users.UserReply
	err := client.client.Call("Users.Approve", approveArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("ApproveUser Reply", reply)

	return &reply, nil
}

// GetUser - fetch one user record
func (client *Client) GetUser(name string, nationalID string) (*users.UserReply, error) {

	getArgs := users.GetArguments{
		Name:       name,
		NationalID: nationalID,
	}

	client.printJson("GetUser Request", getArgs)

	var reply users.UserReply
	err := client.client.Call("Users.Get", getArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("GetUser Reply", reply)

	return &reply, nil
}

// RechargeUser - add a voucher denomination to a user balance
func (client *Client) RechargeUser(name string, nationalID string, voucherID string) (*users.UserReply, error) {

	rechargeArgs := users.RechargeArguments{
		Name:       name,
		NationalID: nationalID,
		VoucherID:  voucherID,
	}

	client.printJson("Recharge Request", rechargeArgs)

	var reply users.UserReply
	err := client.client.Call("Users.Recharge", rechargeArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Recharge Reply", reply)

	return &reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/regnet-network/regnetd/command/regnet-cli/rpccalls"
)

func runRegisterUser(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequiredFlag(c, "name")
	if nil != err {
		return err
	}
	nationalID, err := checkRequiredFlag(c, "nationalid")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterUser(&rpccalls.UserData{
		Identity:    m.identity,
		Name:        name,
		Email:       c.String("email"),
		PhoneNumber: c.String("phone"),
		NationalID:  nationalID,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runApproveUser(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequiredFlag(c, "name")
	if nil != err {
		return err
	}
	nationalID, err := checkRequiredFlag(c, "nationalid")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ApproveUser(m.identity, name, nationalID)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runViewUser(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequiredFlag(c, "name")
	if nil != err {
		return err
	}
	nationalID, err := checkRequiredFlag(c, "nationalid")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetUser(name, nationalID)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runRecharge(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequiredFlag(c, "name")
	if nil != err {
		return err
	}
	nationalID, err := checkRequiredFlag(c, "nationalid")
	if nil != err {
		return err
	}
	voucherID, err := checkRequiredFlag(c, "voucher")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RechargeUser(name, nationalID, voucherID)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

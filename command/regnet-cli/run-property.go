// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/regnet-network/regnetd/command/regnet-cli/rpccalls"
)

func runRegisterProperty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	propertyID, err := checkRequiredFlag(c, "property")
	if nil != err {
		return err
	}
	name, err := checkRequiredFlag(c, "name")
	if nil != err {
		return err
	}
	nationalID, err := checkRequiredFlag(c, "nationalid")
	if nil != err {
		return err
	}
	price := c.Uint64("price")
	if 0 == price {
		return fmt.Errorf("missing required flag: --price")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterProperty(&rpccalls.PropertyData{
		PropertyID:      propertyID,
		Price:           price,
		OwnerName:       name,
		OwnerNationalID: nationalID,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runApproveProperty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	propertyID, err := checkRequiredFlag(c, "property")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ApproveProperty(m.identity, propertyID)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runViewProperty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	propertyID, err := checkRequiredFlag(c, "property")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetProperty(propertyID)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runSetPropertyStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	propertyID, err := checkRequiredFlag(c, "property")
	if nil != err {
		return err
	}
	name, err := checkRequiredFlag(c, "name")
	if nil != err {
		return err
	}
	nationalID, err := checkRequiredFlag(c, "nationalid")
	if nil != err {
		return err
	}
	status, err := checkRequiredFlag(c, "status")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetPropertyStatus(propertyID, name, nationalID, status)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

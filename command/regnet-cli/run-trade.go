// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/regnet-network/regnetd/command/regnet-cli/rpccalls"
)

func runBuy(c *cli.Context) error {

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

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Purchase(propertyID, name, nationalID)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

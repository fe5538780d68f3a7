// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

type metadata struct {
	connect  string
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "regnet-cli"
	app.Usage = "submit transactions to a running regnetd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " regnetd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " caller identity `NAME` for identity checked requests",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "register-user",
			Usage:     "request a new user registration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*user `NAME`",
				},
				cli.StringFlag{
					Name:  "nationalid, d",
					Value: "",
					Usage: "*national identity document `NUMBER`",
				},
				cli.StringFlag{
					Name:  "email, e",
					Value: "",
					Usage: " contact `EMAIL`",
				},
				cli.StringFlag{
					Name:  "phone, p",
					Value: "",
					Usage: " contact phone `NUMBER`",
				},
			},
			Action: runRegisterUser,
		},
		{
			Name:      "approve-user",
			Usage:     "registrar approval of a requested user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*user `NAME`",
				},
				cli.StringFlag{
					Name:  "nationalid, d",
					Value: "",
					Usage: "*national identity document `NUMBER`",
				},
			},
			Action: runApproveUser,
		},
		{
			Name:      "view-user",
			Usage:     "fetch one user record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*user `NAME`",
				},
				cli.StringFlag{
					Name:  "nationalid, d",
					Value: "",
					Usage: "*national identity document `NUMBER`",
				},
			},
			Action: runViewUser,
		},
		{
			Name:      "recharge",
			Usage:     "add a voucher denomination to a user balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*user `NAME`",
				},
				cli.StringFlag{
					Name:  "nationalid, d",
					Value: "",
					Usage: "*national identity document `NUMBER`",
				},
				cli.StringFlag{
					Name:  "voucher, u",
					Value: "",
					Usage: "*voucher `ID` [upg100|upg500|upg1000]",
				},
			},
			Action: runRecharge,
		},
		{
			Name:      "register-property",
			Usage:     "request a new property registration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "property, P",
					Value: "",
					Usage: "*property `ID`",
				},
				cli.Uint64Flag{
					Name:  "price, r",
					Value: 0,
					Usage: "*asking `PRICE`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*owner `NAME`",
				},
				cli.StringFlag{
					Name:  "nationalid, d",
					Value: "",
					Usage: "*owner national identity document `NUMBER`",
				},
			},
			Action: runRegisterProperty,
		},
		{
			Name:      "approve-property",
			Usage:     "registrar endorsement of a property title",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "property, P",
					Value: "",
					Usage: "*property `ID`",
				},
			},
			Action: runApproveProperty,
		},
		{
			Name:      "view-property",
			Usage:     "fetch one property record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "property, P",
					Value: "",
					Usage: "*property `ID`",
				},
			},
			Action: runViewProperty,
		},
		{
			Name:      "set-property-status",
			Usage:     "owner operated listing switch",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "property, P",
					Value: "",
					Usage: "*property `ID`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*owner `NAME`",
				},
				cli.StringFlag{
					Name:  "nationalid, d",
					Value: "",
					Usage: "*owner national identity document `NUMBER`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "*new `STATUS` [registered|onSale]",
				},
			},
			Action: runSetPropertyStatus,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed property",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "property, P",
					Value: "",
					Usage: "*property `ID`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*buyer `NAME`",
				},
				cli.StringFlag{
					Name:  "nationalid, d",
					Value: "",
					Usage: "*buyer national identity document `NUMBER`",
				},
			},
			Action: runBuy,
		},
		{
			Name:   "info",
			Usage:  "display node status",
			Action: runInfo,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			identity: c.GlobalString("identity"),
			verbose:  c.GlobalBool("verbose"),
			e:        app.ErrWriter,
			w:        app.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

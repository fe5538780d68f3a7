// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// fetch a flag value failing if it was not supplied
func checkRequiredFlag(c *cli.Context, name string) (string, error) {
	value := c.String(name)
	if "" == value {
		return "", fmt.Errorf("missing required flag: --%s", name)
	}
	return value, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// the configuration file is a Lua program returning a single table;
// the table is mapped onto a Go structure using gluamapper tags
package configuration

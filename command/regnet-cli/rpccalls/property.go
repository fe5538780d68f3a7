// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regnet-network/regnetd/rpc/properties"
)

// PropertyData - data for a property registration request
type PropertyData struct {
	PropertyID      string
	Price           uint64
	OwnerName       string
	OwnerNationalID string
}

// RegisterProperty - request a new property registration
func (client *Client) RegisterProperty(propertyConfig *PropertyData) (*properties.PropertyReply, error) {

	registerArgs := properties.RegisterArguments{
		PropertyID:      propertyConfig.PropertyID,
		Price:           propertyConfig.Price,
		OwnerName:       propertyConfig.OwnerName,
		OwnerNationalID: propertyConfig.OwnerNationalID,
	}

	client.printJson("RegisterProperty Request", registerArgs)

	var reply properties.PropertyReply
	err := client.client.Call("Properties.Register", registerArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("RegisterProperty Reply", reply)

	return &reply, nil
}

// ApproveProperty - registrar endorsement of a property title
func (client *Client) ApproveProperty(identity string, propertyID string) (*properties.PropertyReply, error) {

	approveArgs := properties.ApproveArguments{
		Identity:   identity,
		PropertyID: propertyID,
	}

	client.printJson("ApproveProperty Request", approveArgs)

	var reply properties.PropertyReply
	err := client.client.Call("Properties.Approve", approveArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("ApproveProperty Reply", reply)

	return &reply, nil
}

// GetProperty - fetch one property record
func (client *Client) GetProperty(propertyID string) (*properties.PropertyReply, error) {

	getArgs := properties.GetArguments{
		PropertyID: propertyID,
	}

	client.printJson("GetProperty Request", getArgs)

	var reply properties.PropertyReply
	err := client.client.Call("Properties.Get", getArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("GetProperty Reply", reply)

	return &reply, nil
}

// SetPropertyStatus - owner operated listing switch
func (client *Client) SetPropertyStatus(propertyID string, name string, nationalID string, status string) (*properties.PropertyReply, error) {

	statusArgs := properties.StatusArguments{
		PropertyID: propertyID,
		Name:       name,
		NationalID: nationalID,
		Status:     status,
	}

	client.printJson("SetPropertyStatus Request", statusArgs)

	var reply properties.PropertyReply
	err := client.client.Call("Properties.SetStatus", statusArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("SetPropertyStatus Reply", reply)

	return &reply, nil
}

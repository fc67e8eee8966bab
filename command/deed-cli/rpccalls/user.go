// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deedregistry/deedd/account"
	rpcUser "github.com/deedregistry/deedd/rpc/user"
)

// CreateUserData - data for a user registration request
type CreateUserData struct {
	Caller      *account.Account
	Account     *account.Account
	Name        string
	ContactInfo string
	Role        string
}

// UpdateUserData - data for a user update request
//
// empty fields are left unchanged by the daemon
type UpdateUserData struct {
	Caller      *account.Account
	Account     *account.Account
	Name        string
	ContactInfo string
	Role        string
}

// GetUser - fetch one user profile by account
func (client *Client) GetUser(acc *account.Account) (*rpcUser.UserReply, error) {

	getArgs := rpcUser.GetArguments{
		Account: acc,
	}

	client.printJson("User Get Request", getArgs)

	var reply rpcUser.UserReply
	if err := client.client.Call("User.Get", &getArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("User Get Reply", reply)

	return &reply, nil
}

// CreateUser - register a user profile
func (client *Client) CreateUser(createConfig *CreateUserData) (*rpcUser.UserReply, error) {

	createArgs := rpcUser.CreateArguments{
		Caller:      createConfig.Caller,
		Account:     createConfig.Account,
		Name:        createConfig.Name,
		ContactInfo: createConfig.ContactInfo,
		Role:        createConfig.Role,
	}

	client.printJson("User Create Request", createArgs)

	var reply rpcUser.UserReply
	if err := client.client.Call("User.Create", &createArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("User Create Reply", reply)

	return &reply, nil
}

// UpdateUser - merge new field values into a stored user
func (client *Client) UpdateUser(updateConfig *UpdateUserData) (*rpcUser.UserReply, error) {

	updateArgs := rpcUser.UpdateArguments{
		Caller:      updateConfig.Caller,
		Account:     updateConfig.Account,
		Name:        updateConfig.Name,
		ContactInfo: updateConfig.ContactInfo,
		Role:        updateConfig.Role,
	}

	client.printJson("User Update Request", updateArgs)

	var reply rpcUser.UserReply
	if err := client.client.Call("User.Update", &updateArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("User Update Reply", reply)

	return &reply, nil
}

// DeleteUser - remove a user profile, the reply carries its final state
func (client *Client) DeleteUser(caller *account.Account, acc *account.Account) (*rpcUser.UserReply, error) {

	deleteArgs := rpcUser.DeleteArguments{
		Caller:  caller,
		Account: acc,
	}

	client.printJson("User Delete Request", deleteArgs)

	var reply rpcUser.UserReply
	if err := client.client.Call("User.Delete", &deleteArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("User Delete Reply", reply)

	return &reply, nil
}

// ListUsers - fetch one zero-indexed page of users
func (client *Client) ListUsers(page uint64, pageSize uint64) (*rpcUser.ListReply, error) {

	listArgs := rpcUser.ListArguments{
		Page:     page,
		PageSize: pageSize,
	}

	client.printJson("User List Request", listArgs)

	var reply rpcUser.ListReply
	if err := client.client.Call("User.List", &listArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("User List Reply", reply)

	return &reply, nil
}

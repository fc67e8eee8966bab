// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"golang.org/x/crypto/ed25519"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/ownership"
	rpcDeed "github.com/deedregistry/deedd/rpc/deed"
)

// CreateDeedData - data for a deed registration request
type CreateDeedData struct {
	Caller          *account.Account
	Address         string
	TokenizedShares uint64
	Owner           *account.Account
}

// UpdateDeedData - data for a deed update request
//
// zero valued fields are left unchanged by the daemon
type UpdateDeedData struct {
	Caller          *account.Account
	Id              uint64
	Address         string
	TokenizedShares uint64
}

// TransferDeedData - data for a share transfer request
//
// PrivateKey is the sender's ed25519 private key; when present the
// packed transfer detail is signed, for daemons that demand signed
// transfers
type TransferDeedData struct {
	Caller     *account.Account
	Id         uint64
	From       *account.Account
	To         *account.Account
	Shares     uint64
	PrivateKey []byte
}

// GetDeed - fetch one deed by its numeric id
func (client *Client) GetDeed(id uint64) (*rpcDeed.DeedReply, error) {

	getArgs := rpcDeed.GetArguments{
		Id: id,
	}

	client.printJson("Deed Get Request", getArgs)

	var reply rpcDeed.DeedReply
	if err := client.client.Call("Deed.Get", &getArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("Deed Get Reply", reply)

	return &reply, nil
}

// CreateDeed - register a new deed
func (client *Client) CreateDeed(createConfig *CreateDeedData) (*rpcDeed.DeedReply, error) {

	createArgs := rpcDeed.CreateArguments{
		Caller:          createConfig.Caller,
		Address:         createConfig.Address,
		TokenizedShares: createConfig.TokenizedShares,
		Owner:           createConfig.Owner,
	}

	client.printJson("Deed Create Request", createArgs)

	var reply rpcDeed.DeedReply
	if err := client.client.Call("Deed.Create", &createArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("Deed Create Reply", reply)

	return &reply, nil
}

// UpdateDeed - merge new field values into a stored deed
func (client *Client) UpdateDeed(updateConfig *UpdateDeedData) (*rpcDeed.DeedReply, error) {

	updateArgs := rpcDeed.UpdateArguments{
		Caller:          updateConfig.Caller,
		Id:              updateConfig.Id,
		Address:         updateConfig.Address,
		TokenizedShares: updateConfig.TokenizedShares,
	}

	client.printJson("Deed Update Request", updateArgs)

	var reply rpcDeed.DeedReply
	if err := client.client.Call("Deed.Update", &updateArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("Deed Update Reply", reply)

	return &reply, nil
}

// DeleteDeed - remove a deed, the reply carries its final state
func (client *Client) DeleteDeed(caller *account.Account, id uint64) (*rpcDeed.DeedReply, error) {

	deleteArgs := rpcDeed.DeleteArguments{
		Caller: caller,
		Id:     id,
	}

	client.printJson("Deed Delete Request", deleteArgs)

	var reply rpcDeed.DeedReply
	if err := client.client.Call("Deed.Delete", &deleteArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("Deed Delete Reply", reply)

	return &reply, nil
}

// ListDeeds - fetch one zero-indexed page of deeds
func (client *Client) ListDeeds(page uint64, pageSize uint64) (*rpcDeed.ListReply, error) {

	listArgs := rpcDeed.ListArguments{
		Page:     page,
		PageSize: pageSize,
	}

	client.printJson("Deed List Request", listArgs)

	var reply rpcDeed.ListReply
	if err := client.client.Call("Deed.List", &listArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("Deed List Reply", reply)

	return &reply, nil
}

// TransferDeed - move shares of a deed to another account
func (client *Client) TransferDeed(transferConfig *TransferDeedData) (*rpcDeed.DeedReply, error) {

	from := transferConfig.From
	if nil == from {
		from = transferConfig.Caller
	}

	var signature account.Signature
	if len(transferConfig.PrivateKey) > 0 {
		if ed25519.PrivateKeySize != len(transferConfig.PrivateKey) {
			return nil, fault.InvalidKeyLength
		}
		detail := ownership.TransferDetail{
			DeedId: transferConfig.Id,
			From:   from,
			To:     transferConfig.To,
			Shares: transferConfig.Shares,
		}
		signature = account.Signature(ed25519.Sign(transferConfig.PrivateKey, detail.Pack()))
	}

	transferArgs := rpcDeed.TransferArguments{
		Caller:    transferConfig.Caller,
		Id:        transferConfig.Id,
		From:      transferConfig.From,
		To:        transferConfig.To,
		Shares:    transferConfig.Shares,
		Signature: signature,
	}

	client.printJson("Deed Transfer Request", transferArgs)

	var reply rpcDeed.DeedReply
	if err := client.client.Call("Deed.Transfer", &transferArgs, &reply); nil != err {
		return nil, err
	}

	client.printJson("Deed Transfer Reply", reply)

	return &reply, nil
}

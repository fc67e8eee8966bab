// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deed

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/mode"
	"github.com/deedregistry/deedd/record"
	"github.com/deedregistry/deedd/registry"
	"github.com/deedregistry/deedd/rpc/ratelimit"
)

// Deed - type for the RPC
type Deed struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Registry     registry.Registry
}

const (
	maximumPageSize = 100
	rateLimitDeed   = 200
	rateBurstDeed   = 100
)

// New - create the deed service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, reg registry.Registry) *Deed {
	return &Deed{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitDeed, rateBurstDeed),
		IsNormalMode: isNormalMode,
		Registry:     reg,
	}
}

// DeedReply - result carrying one deed
type DeedReply struct {
	Deed *record.Deed `json:"deed"`
}

// Deed.Get
// --------

// GetArguments - arguments for RPC
type GetArguments struct {
	Id uint64 `json:"id"`
}

// Get - read one deed by id
func (d *Deed) Get(arguments *GetArguments, reply *DeedReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Deed.Get: %+v", arguments)

	deed, err := d.Registry.GetDeed(arguments.Id)
	if nil != err {
		return err
	}
	reply.Deed = deed
	return nil
}

// Deed.Create
// -----------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Caller          *account.Account `json:"caller"` // base58
	Address         string           `json:"address"`
	TokenizedShares uint64           `json:"tokenized_shares"`
	Owner           *account.Account `json:"owner,omitempty"` // base58, defaults to caller
}

// Create - register a new deed
func (d *Deed) Create(arguments *CreateArguments, reply *DeedReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Deed.Create: %+v", arguments)

	if !d.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStart
	}

	deed, err := d.Registry.CreateDeed(arguments.Caller, arguments.Address, arguments.TokenizedShares, arguments.Owner)
	if nil != err {
		return err
	}
	reply.Deed = deed
	return nil
}

// Deed.Update
// -----------

// UpdateArguments - arguments for RPC
//
// empty fields leave the stored values unchanged
type UpdateArguments struct {
	Caller          *account.Account `json:"caller"` // base58
	Id              uint64           `json:"id"`
	Address         string           `json:"address,omitempty"`
	TokenizedShares uint64           `json:"tokenized_shares,omitempty"`
}

// Update - merge payload fields into a stored deed
func (d *Deed) Update(arguments *UpdateArguments, reply *DeedReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Deed.Update: %+v", arguments)

	if !d.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStart
	}

	deed, err := d.Registry.UpdateDeed(arguments.Caller, arguments.Id, arguments.Address, arguments.TokenizedShares)
	if nil != err {
		return err
	}
	reply.Deed = deed
	return nil
}

// Deed.Delete
// -----------

// DeleteArguments - arguments for RPC
type DeleteArguments struct {
	Caller *account.Account `json:"caller"` // base58
	Id     uint64           `json:"id"`
}

// Delete - remove a deed, the reply carries its final state
func (d *Deed) Delete(arguments *DeleteArguments, reply *DeedReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Deed.Delete: %+v", arguments)

	if !d.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStart
	}

	deed, err := d.Registry.DeleteDeed(arguments.Caller, arguments.Id)
	if nil != err {
		return err
	}
	reply.Deed = deed
	return nil
}

// Deed.List
// ---------

// ListArguments - arguments for RPC
type ListArguments struct {
	Page     uint64 `json:"page"`
	PageSize uint64 `json:"page_size"`
}

// ListReply - one page of deeds in ascending id order
type ListReply struct {
	Deeds []*record.Deed `json:"deeds"`
}

// List - fetch one zero-indexed page of deeds
func (d *Deed) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(d.Limiter, int(arguments.PageSize), maximumPageSize); nil != err {
		return err
	}

	d.Log.Infof("Deed.List: %+v", arguments)

	deeds, err := d.Registry.ListDeeds(arguments.Page, arguments.PageSize)
	if nil != err {
		return err
	}
	reply.Deeds = deeds
	return nil
}

// Deed.Transfer
// -------------

// TransferArguments - arguments for RPC
//
// from defaults to the caller; the signature is the current owner's
// ed25519 signature over the packed transfer detail, only checked when
// the daemon is configured to require signed transfers
type TransferArguments struct {
	Caller    *account.Account  `json:"caller"` // base58
	Id        uint64            `json:"id"`
	From      *account.Account  `json:"from,omitempty"` // base58
	To        *account.Account  `json:"to"`             // base58
	Shares    uint64            `json:"shares"`
	Signature account.Signature `json:"signature,omitempty"` // hex
}

// Transfer - move shares between accounts on one deed
func (d *Deed) Transfer(arguments *TransferArguments, reply *DeedReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Deed.Transfer: %+v", arguments)

	if !d.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStart
	}

	deed, err := d.Registry.TransferDeed(arguments.Caller, arguments.Id, arguments.From, arguments.To, arguments.Shares, arguments.Signature)
	if nil != err {
		return err
	}
	reply.Deed = deed
	return nil
}

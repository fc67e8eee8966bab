// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package user

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

// User - type for the RPC
type User struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Registry     registry.Registry
}

const (
	maximumPageSize = 100
	rateLimitUser   = 200
	rateBurstUser   = 100
)

// New - create the user service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, reg registry.Registry) *User {
	return &User{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitUser, rateBurstUser),
		IsNormalMode: isNormalMode,
		Registry:     reg,
	}
}

// UserReply - result carrying one user
type UserReply struct {
	User *record.User `json:"user"`
}

// User.Get
// --------

// GetArguments - arguments for RPC
type GetArguments struct {
	Account *account.Account `json:"account"` // base58
}

// Get - read one user profile by account
func (u *User) Get(arguments *GetArguments, reply *UserReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	u.Log.Infof("User.Get: %+v", arguments)

	user, err := u.Registry.GetUser(arguments.Account)
	if nil != err {
		return err
	}
	reply.User = user
	return nil
}

// User.Create
// -----------

// CreateArguments - arguments for RPC
//
// account defaults to the caller, enforcing one profile per identity
type CreateArguments struct {
	Caller      *account.Account `json:"caller"`            // base58
	Account     *account.Account `json:"account,omitempty"` // base58
	Name        string           `json:"name"`
	ContactInfo string           `json:"contact_info"`
	Role        string           `json:"role"`
}

// Create - register a user profile
func (u *User) Create(arguments *CreateArguments, reply *UserReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	u.Log.Infof("User.Create: %+v", arguments)

	if !u.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStart
	}

	user, err := u.Registry.CreateUser(arguments.Caller, arguments.Account, arguments.Name, arguments.ContactInfo, arguments.Role)
	if nil != err {
		return err
	}
	reply.User = user
	return nil
}

// User.Update
// -----------

// UpdateArguments - arguments for RPC
//
// empty fields leave the stored values unchanged
type UpdateArguments struct {
	Caller      *account.Account `json:"caller"`  // base58
	Account     *account.Account `json:"account"` // base58
	Name        string           `json:"name,omitempty"`
	ContactInfo string           `json:"contact_info,omitempty"`
	Role        string           `json:"role,omitempty"`
}

// Update - merge payload fields into a stored user
func (u *User) Update(arguments *UpdateArguments, reply *UserReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	u.Log.Infof("User.Update: %+v", arguments)

	if !u.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStart
	}

	user, err := u.Registry.UpdateUser(arguments.Caller, arguments.Account, arguments.Name, arguments.ContactInfo, arguments.Role)
	if nil != err {
		return err
	}
	reply.User = user
	return nil
}

// User.Delete
// -----------

// DeleteArguments - arguments for RPC
type DeleteArguments struct {
	Caller  *account.Account `json:"caller"`  // base58
	Account *account.Account `json:"account"` // base58
}

// Delete - remove a user profile, the reply carries its final state
func (u *User) Delete(arguments *DeleteArguments, reply *UserReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	u.Log.Infof("User.Delete: %+v", arguments)

	if !u.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStart
	}

	user, err := u.Registry.DeleteUser(arguments.Caller, arguments.Account)
	if nil != err {
		return err
	}
	reply.User = user
	return nil
}

// User.List
// ---------

// ListArguments - arguments for RPC
type ListArguments struct {
	Page     uint64 `json:"page"`
	PageSize uint64 `json:"page_size"`
}

// ListReply - one page of users in ascending account order
type ListReply struct {
	Users []*record.User `json:"users"`
}

// List - fetch one zero-indexed page of users
func (u *User) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(u.Limiter, int(arguments.PageSize), maximumPageSize); nil != err {
		return err
	}

	u.Log.Infof("User.List: %+v", arguments)

	users, err := u.Registry.ListUsers(arguments.Page, arguments.PageSize)
	if nil != err {
		return err
	}
	reply.Users = users
	return nil
}

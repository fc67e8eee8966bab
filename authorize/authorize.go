// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authorize - role and ownership gate in front of all mutations
//
// two independently configurable checks: role based, comparing the
// caller's stored role against the role an action demands, and
// ownership based, requiring the caller to be a deed's owner of record
// for update and transfer. where both are enabled both must pass.
package authorize

import (
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/record"
	"github.com/deedregistry/deedd/storage"
)

// Action - an operation class to be authorized
type Action int

// all gated actions, read operations are not gated
const (
	CreateDeed Action = iota
	UpdateDeed
	DeleteDeed
	TransferDeed
	CreateUser
	UpdateUser
	DeleteUser
)

// role tags
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"

	// DefaultRole - assigned when a caller has no user record
	DefaultRole = "user"
)

// Configuration - enforcement switches from the configuration file
type Configuration struct {
	RoleBased      bool     `gluamapper:"role_based" json:"role_based"`
	OwnershipBased bool     `gluamapper:"ownership_based" json:"ownership_based"`
	Administrators []string `gluamapper:"administrators" json:"administrators"`
}

type authData struct {
	sync.RWMutex

	log *logger.L

	roleBased      bool
	ownershipBased bool
	administrators map[string]struct{}

	initialised bool
}

var globalData authData

// Initialise - parse the administrator list and start the gate
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("authorize")
	globalData.log.Info("starting…")

	globalData.roleBased = configuration.RoleBased
	globalData.ownershipBased = configuration.OwnershipBased

	globalData.administrators = make(map[string]struct{})
	for _, administrator := range configuration.Administrators {
		acc, err := account.AccountFromBase58(administrator)
		if nil != err {
			return err
		}
		globalData.administrators[acc.String()] = struct{}{}
	}
	globalData.log.Infof("administrators: %d  role based: %v  ownership based: %v",
		len(globalData.administrators), globalData.roleBased, globalData.ownershipBased)

	globalData.initialised = true
	return nil
}

// Finalise - stop the gate
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// RoleFor - resolve a caller's effective role
//
// configured administrators are admin without needing a user record,
// which bootstraps an empty registry. a caller with no user record
// gets the default role deliberately, least privilege rather than a
// lookup failure.
func RoleFor(caller *account.Account) string {
	if nil == caller {
		return DefaultRole
	}

	globalData.RLock()
	_, isAdministrator := globalData.administrators[caller.String()]
	globalData.RUnlock()
	if isAdministrator {
		return RoleAdmin
	}

	packed := storage.Pool.Users.Get(record.UserKey(caller))
	if nil == packed {
		return DefaultRole
	}
	user, err := record.UnpackUser(packed)
	if nil != err {
		globalData.log.Errorf("corrupt user record for: %s  error: %s", caller, err)
		return DefaultRole
	}
	if "" == user.Role {
		return DefaultRole
	}
	return user.Role
}

// roles an action demands, nil means no role restriction
func requiredRoles(action Action) []string {
	switch action {
	case CreateDeed, UpdateDeed:
		return []string{RoleOwner, RoleAdmin}
	case DeleteDeed, CreateUser, UpdateUser, DeleteUser:
		return []string{RoleAdmin}
	case TransferDeed:
		return nil // gated by ownership, not role
	default:
		return []string{RoleAdmin}
	}
}

// does ownership of the target deed gate this action
func ownershipApplies(action Action) bool {
	switch action {
	case UpdateDeed, TransferDeed:
		return true
	default:
		return false
	}
}

// Authorize - approve or reject an action before it reaches storage
//
// target is the deed the action operates on, nil where none exists yet
func Authorize(caller *account.Account, action Action, target *record.Deed) error {
	globalData.RLock()
	roleBased := globalData.roleBased
	ownershipBased := globalData.ownershipBased
	globalData.RUnlock()

	if nil == caller {
		return fault.UnauthorizedError("missing caller identity")
	}

	if roleBased {
		required := requiredRoles(action)
		if nil != required {
			role := RoleFor(caller)
			ok := false
			for _, r := range required {
				if role == r {
					ok = true
					break
				}
			}
			if !ok {
				return fault.UnauthorizedError(
					fmt.Sprintf("caller %s has role %q which does not permit this operation", caller, role))
			}
		}
	}

	if ownershipBased && ownershipApplies(action) && nil != target {
		if !target.IsOwnedBy(caller) {
			return fault.UnauthorizedError(
				fmt.Sprintf("caller %s is not the owner of deed id=%d", caller, target.Id))
		}
	}

	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"math"
	"time"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/authorize"
	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/record"
	"github.com/deedregistry/deedd/storage"
)

// read a user or report which account was missing
func fetchUser(acc *account.Account) (*record.User, error) {
	if nil == acc {
		return nil, fault.MissingParameters
	}
	packed := storage.Pool.Users.Get(record.UserKey(acc))
	if nil == packed {
		return nil, fault.NotFoundError(fmt.Sprintf("user with account %s not found", acc))
	}
	return record.UnpackUser(packed)
}

// GetUser - read a single user
func (r *registryData) GetUser(acc *account.Account) (*record.User, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	return fetchUser(acc)
}

// CreateUser - register a user profile for an account
//
// the account is the key, so at most one profile exists per identity;
// acc defaults to the caller's own account
func (r *registryData) CreateUser(caller *account.Account, acc *account.Account, name string, contactInfo string, role string) (*record.User, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	err := authorize.Authorize(caller, authorize.CreateUser, nil)
	if nil != err {
		return nil, err
	}

	if nil == acc {
		acc = caller
	}

	if "" == name {
		return nil, fault.InvalidError("user name must not be empty")
	}
	if "" == contactInfo {
		return nil, fault.InvalidError("user contact info must not be empty")
	}
	if "" == role {
		return nil, fault.InvalidError("user role must not be empty")
	}

	key := record.UserKey(acc)
	if storage.Pool.Users.Has(key) {
		return nil, fault.ExistsError(
			fmt.Sprintf("user already exists for account %s", acc))
	}

	now := time.Now().UTC()
	user := &record.User{
		Account:     acc,
		Name:        name,
		ContactInfo: contactInfo,
		Role:        role,
		CreatedAt:   now,
		CreatedBy:   caller,
	}

	packed, err := user.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Users, key, packed)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	r.log.Infof("created user: %s  role: %s", acc, role)
	return user, nil
}

// UpdateUser - merge non-empty payload fields into a stored user
func (r *registryData) UpdateUser(caller *account.Account, acc *account.Account, name string, contactInfo string, role string) (*record.User, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	err := authorize.Authorize(caller, authorize.UpdateUser, nil)
	if nil != err {
		return nil, err
	}

	user, err := fetchUser(acc)
	if nil != err {
		return nil, err
	}

	if "" != name {
		user.Name = name
	}
	if "" != contactInfo {
		user.ContactInfo = contactInfo
	}
	if "" != role {
		user.Role = role
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now
	user.UpdatedBy = caller

	packed, err := user.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Users, record.UserKey(acc), packed)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	r.log.Infof("updated user: %s", acc)
	return user, nil
}

// DeleteUser - remove a user profile, returning its final state
func (r *registryData) DeleteUser(caller *account.Account, acc *account.Account) (*record.User, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	err := authorize.Authorize(caller, authorize.DeleteUser, nil)
	if nil != err {
		return nil, err
	}

	user, err := fetchUser(acc)
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Delete(storage.Pool.Users, record.UserKey(acc))

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	r.log.Infof("deleted user: %s", acc)
	return user, nil
}

// ListUsers - one zero-indexed page of users in ascending key order
func (r *registryData) ListUsers(page uint64, pageSize uint64) ([]*record.User, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	users := []*record.User{}

	if 0 == pageSize || pageSize > math.MaxInt32 {
		return users, nil
	}

	offset := page * pageSize
	if 0 != page && offset/page != pageSize {
		return users, nil
	}
	if offset > math.MaxInt32 {
		return users, nil
	}

	cursor := storage.Pool.Users.NewFetchCursor()
	if offset > 0 {
		n, err := cursor.Skip(int(offset))
		if nil != err {
			return nil, err
		}
		if uint64(n) < offset {
			return users, nil
		}
	}

	elements, err := cursor.Fetch(int(pageSize))
	if nil != err {
		return nil, err
	}

	for _, element := range elements {
		user, err := record.UnpackUser(element.Value)
		if nil != err {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the deed and user registry aggregate
//
// owns the two storage pools and the deed id sequence and exposes the
// full operation surface. every operation takes the single process-wide
// operation lock, so each read-modify-write runs to completion before
// the next begins, the same serialized execution a single-threaded host
// would provide.
package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/allocator"
	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/record"
	"github.com/deedregistry/deedd/storage"
)

// Registry - the operation surface handed to the RPC services
type Registry interface {
	GetDeed(id uint64) (*record.Deed, error)
	CreateDeed(caller *account.Account, address string, shares uint64, owner *account.Account) (*record.Deed, error)
	UpdateDeed(caller *account.Account, id uint64, address string, shares uint64) (*record.Deed, error)
	DeleteDeed(caller *account.Account, id uint64) (*record.Deed, error)
	ListDeeds(page uint64, pageSize uint64) ([]*record.Deed, error)
	TransferDeed(caller *account.Account, id uint64, from *account.Account, to *account.Account, shares uint64, signature account.Signature) (*record.Deed, error)

	GetUser(acc *account.Account) (*record.User, error)
	CreateUser(caller *account.Account, acc *account.Account, name string, contactInfo string, role string) (*record.User, error)
	UpdateUser(caller *account.Account, acc *account.Account, name string, contactInfo string, role string) (*record.User, error)
	DeleteUser(caller *account.Account, acc *account.Account) (*record.User, error)
	ListUsers(page uint64, pageSize uint64) ([]*record.User, error)

	Counts() (deeds uint64, users uint64)
}

type registryData struct {
	sync.RWMutex

	// serializes every operation, reads included, so no operation
	// observes another's staged writes
	operation sync.Mutex

	log *logger.L

	deedIds *allocator.Allocator

	initialised bool
}

var globalData registryData

// Initialise - start the registry
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	if !storage.IsInitialised() {
		return fault.DatabaseIsNotSet
	}

	globalData.deedIds = allocator.New("deed-id")
	globalData.log.Infof("last issued deed id: %d", globalData.deedIds.Current())

	globalData.initialised = true
	return nil
}

// Finalise - stop the registry
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

// Get - the registry operation surface, nil before Initialise
func Get() Registry {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return nil
	}
	return &globalData
}

// Counts - number of stored deeds and users
func (r *registryData) Counts() (uint64, uint64) {
	r.operation.Lock()
	defer r.operation.Unlock()

	deeds := uint64(0)
	storage.Pool.Deeds.NewFetchCursor().Map(func(key []byte, value []byte) error {
		deeds += 1
		return nil
	})

	users := uint64(0)
	storage.Pool.Users.NewFetchCursor().Map(func(key []byte, value []byte) error {
		users += 1
		return nil
	})

	return deeds, users
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authorize_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/authorize"
	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/record"
	"github.com/deedregistry/deedd/storage"
)

const (
	databaseFileName = "test.leveldb"
)

func makeAccount(fill byte) *account.Account {
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = fill
	}
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

func storeUser(t *testing.T, acc *account.Account, role string) {
	user := &record.User{
		Account:   acc,
		Name:      "someone",
		Role:      role,
		CreatedAt: time.Now().UTC(),
		CreatedBy: acc,
	}
	packed, err := user.Pack()
	if nil != err {
		t.Fatalf("user pack error: %s", err)
	}
	storage.Pool.Users.Put(record.UserKey(acc), packed)
}

func setup(t *testing.T, cfg *authorize.Configuration) {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = authorize.Initialise(cfg)
	if nil != err {
		t.Fatalf("authorize initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	authorize.Finalise()
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func TestMain(m *testing.M) {

	curPath := os.Getenv("PWD")
	logConfig := logger.Configuration{
		Directory: curPath,
		File:      "authorize_test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}

	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialise failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(fmt.Sprintf("%s/authorize_test.log", curPath))
	os.RemoveAll(databaseFileName)

	os.Exit(rc)
}

func TestRoleForDefaultsToUser(t *testing.T) {
	setup(t, &authorize.Configuration{RoleBased: true})
	defer teardown(t)

	unknown := makeAccount(0x01)
	assert.Equal(t, authorize.DefaultRole, authorize.RoleFor(unknown), "wrong default role")
}

func TestRoleForReadsUserRecord(t *testing.T) {
	setup(t, &authorize.Configuration{RoleBased: true})
	defer teardown(t)

	acc := makeAccount(0x02)
	storeUser(t, acc, "owner")
	assert.Equal(t, "owner", authorize.RoleFor(acc), "wrong stored role")
}

func TestRoleForAdministrator(t *testing.T) {
	admin := makeAccount(0x03)
	setup(t, &authorize.Configuration{
		RoleBased:      true,
		Administrators: []string{admin.String()},
	})
	defer teardown(t)

	assert.Equal(t, authorize.RoleAdmin, authorize.RoleFor(admin), "administrator not admin")
}

func TestRoleBasedCreateDeed(t *testing.T) {
	setup(t, &authorize.Configuration{RoleBased: true})
	defer teardown(t)

	owner := makeAccount(0x04)
	storeUser(t, owner, "owner")

	plain := makeAccount(0x05)
	storeUser(t, plain, "user")

	err := authorize.Authorize(owner, authorize.CreateDeed, nil)
	assert.NoError(t, err, "role owner rejected")

	err = authorize.Authorize(plain, authorize.CreateDeed, nil)
	assert.Error(t, err, "role user accepted")
	assert.True(t, fault.IsErrUnauthorized(err), "wrong error class: %v", err)
}

func TestRoleBasedUserOperationsNeedAdmin(t *testing.T) {
	admin := makeAccount(0x06)
	setup(t, &authorize.Configuration{
		RoleBased:      true,
		Administrators: []string{admin.String()},
	})
	defer teardown(t)

	owner := makeAccount(0x07)
	storeUser(t, owner, "owner")

	for _, action := range []authorize.Action{
		authorize.CreateUser,
		authorize.UpdateUser,
		authorize.DeleteUser,
		authorize.DeleteDeed,
	} {
		err := authorize.Authorize(admin, action, nil)
		assert.NoError(t, err, "admin rejected for action %d", action)

		err = authorize.Authorize(owner, action, nil)
		assert.True(t, fault.IsErrUnauthorized(err), "owner accepted for action %d", action)
	}
}

func TestOwnershipBasedGate(t *testing.T) {
	setup(t, &authorize.Configuration{OwnershipBased: true})
	defer teardown(t)

	owner := makeAccount(0x08)
	other := makeAccount(0x09)

	deed := &record.Deed{
		Id:    1,
		Owner: owner,
	}

	err := authorize.Authorize(owner, authorize.TransferDeed, deed)
	assert.NoError(t, err, "owner rejected for transfer")

	err = authorize.Authorize(other, authorize.TransferDeed, deed)
	assert.True(t, fault.IsErrUnauthorized(err), "non-owner accepted for transfer")

	err = authorize.Authorize(other, authorize.UpdateDeed, deed)
	assert.True(t, fault.IsErrUnauthorized(err), "non-owner accepted for update")

	// ownership does not gate delete, that is a role concern
	err = authorize.Authorize(other, authorize.DeleteDeed, deed)
	assert.NoError(t, err, "delete blocked by ownership gate")
}

func TestBothModes(t *testing.T) {
	setup(t, &authorize.Configuration{RoleBased: true, OwnershipBased: true})
	defer teardown(t)

	owner := makeAccount(0x0a)
	storeUser(t, owner, "owner")
	other := makeAccount(0x0b)
	storeUser(t, other, "owner")

	deed := &record.Deed{
		Id:    2,
		Owner: owner,
	}

	// correct role but not the owner of record
	err := authorize.Authorize(other, authorize.UpdateDeed, deed)
	assert.True(t, fault.IsErrUnauthorized(err), "role passed but ownership ignored")

	err = authorize.Authorize(owner, authorize.UpdateDeed, deed)
	assert.NoError(t, err, "owner with correct role rejected")
}

func TestMissingCaller(t *testing.T) {
	setup(t, &authorize.Configuration{})
	defer teardown(t)

	err := authorize.Authorize(nil, authorize.CreateDeed, nil)
	assert.True(t, fault.IsErrUnauthorized(err), "nil caller accepted")
}

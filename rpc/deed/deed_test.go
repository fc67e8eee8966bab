// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deed_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/mode"
	"github.com/deedregistry/deedd/record"
	"github.com/deedregistry/deedd/rpc/deed"
)

func TestMain(m *testing.M) {

	curPath := os.Getenv("PWD")
	logConfig := logger.Configuration{
		Directory: curPath,
		File:      "deed_rpc_test.log",
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
	os.RemoveAll(fmt.Sprintf("%s/deed_rpc_test.log", curPath))

	os.Exit(rc)
}

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

// registry stub recording the last call
type fakeRegistry struct {
	deed     *record.Deed
	lastCall string
}

func (f *fakeRegistry) GetDeed(id uint64) (*record.Deed, error) {
	f.lastCall = "GetDeed"
	if nil == f.deed || f.deed.Id != id {
		return nil, fault.NotFoundError(fmt.Sprintf("deed with id=%d not found", id))
	}
	return f.deed, nil
}

func (f *fakeRegistry) CreateDeed(caller *account.Account, address string, shares uint64, owner *account.Account) (*record.Deed, error) {
	f.lastCall = "CreateDeed"
	if nil == owner {
		owner = caller
	}
	f.deed = &record.Deed{
		Id:              1,
		Address:         address,
		Owner:           owner,
		TokenizedShares: shares,
		CreatedAt:       time.Now().UTC(),
		CreatedBy:       caller,
	}
	return f.deed, nil
}

func (f *fakeRegistry) UpdateDeed(caller *account.Account, id uint64, address string, shares uint64) (*record.Deed, error) {
	f.lastCall = "UpdateDeed"
	return f.deed, nil
}

func (f *fakeRegistry) DeleteDeed(caller *account.Account, id uint64) (*record.Deed, error) {
	f.lastCall = "DeleteDeed"
	return f.deed, nil
}

func (f *fakeRegistry) ListDeeds(page uint64, pageSize uint64) ([]*record.Deed, error) {
	f.lastCall = "ListDeeds"
	if nil == f.deed {
		return []*record.Deed{}, nil
	}
	return []*record.Deed{f.deed}, nil
}

func (f *fakeRegistry) TransferDeed(caller *account.Account, id uint64, from *account.Account, to *account.Account, shares uint64, signature account.Signature) (*record.Deed, error) {
	f.lastCall = "TransferDeed"
	return f.deed, nil
}

func (f *fakeRegistry) GetUser(acc *account.Account) (*record.User, error) { return nil, nil }
func (f *fakeRegistry) CreateUser(caller *account.Account, acc *account.Account, name string, contactInfo string, role string) (*record.User, error) {
	return nil, nil
}
func (f *fakeRegistry) UpdateUser(caller *account.Account, acc *account.Account, name string, contactInfo string, role string) (*record.User, error) {
	return nil, nil
}
func (f *fakeRegistry) DeleteUser(caller *account.Account, acc *account.Account) (*record.User, error) {
	return nil, nil
}
func (f *fakeRegistry) ListUsers(page uint64, pageSize uint64) ([]*record.User, error) {
	return nil, nil
}
func (f *fakeRegistry) Counts() (uint64, uint64) { return 0, 0 }

func normalMode(m mode.Mode) bool  { return mode.Normal == m }
func stoppedMode(m mode.Mode) bool { return false }

func TestCreateAndGet(t *testing.T) {
	reg := &fakeRegistry{}
	service := deed.New(logger.New("test-deed"), normalMode, reg)

	caller := makeAccount(0x01)

	var reply deed.DeedReply
	err := service.Create(&deed.CreateArguments{
		Caller:          caller,
		Address:         "1 Main St",
		TokenizedShares: 100,
	}, &reply)
	assert.NoError(t, err, "create error")
	assert.Equal(t, "CreateDeed", reg.lastCall, "wrong registry call")
	assert.Equal(t, uint64(1), reply.Deed.Id, "wrong id")

	var getReply deed.DeedReply
	err = service.Get(&deed.GetArguments{Id: 1}, &getReply)
	assert.NoError(t, err, "get error")
	assert.Equal(t, "1 Main St", getReply.Deed.Address, "wrong address")

	err = service.Get(&deed.GetArguments{Id: 2}, &getReply)
	assert.True(t, fault.IsErrNotFound(err), "unknown id accepted: %v", err)
}

// mutations are refused until the daemon reaches normal mode
func TestMutationsBlockedOutsideNormalMode(t *testing.T) {
	reg := &fakeRegistry{}
	service := deed.New(logger.New("test-deed"), stoppedMode, reg)

	caller := makeAccount(0x02)

	var reply deed.DeedReply
	err := service.Create(&deed.CreateArguments{Caller: caller, Address: "1 Main St"}, &reply)
	assert.Equal(t, fault.NotAvailableDuringStart, err, "create allowed while starting")

	err = service.Update(&deed.UpdateArguments{Caller: caller, Id: 1}, &reply)
	assert.Equal(t, fault.NotAvailableDuringStart, err, "update allowed while starting")

	err = service.Delete(&deed.DeleteArguments{Caller: caller, Id: 1}, &reply)
	assert.Equal(t, fault.NotAvailableDuringStart, err, "delete allowed while starting")

	err = service.Transfer(&deed.TransferArguments{Caller: caller, Id: 1, To: makeAccount(0x03), Shares: 1}, &reply)
	assert.Equal(t, fault.NotAvailableDuringStart, err, "transfer allowed while starting")

	// reads still work
	_, _ = reg.CreateDeed(caller, "1 Main St", 10, nil)
	var getReply deed.DeedReply
	err = service.Get(&deed.GetArguments{Id: 1}, &getReply)
	assert.NoError(t, err, "read blocked while starting")
}

func TestListPageSizeLimit(t *testing.T) {
	reg := &fakeRegistry{}
	service := deed.New(logger.New("test-deed"), normalMode, reg)

	var reply deed.ListReply
	err := service.List(&deed.ListArguments{Page: 0, PageSize: 1000}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversize page accepted")

	err = service.List(&deed.ListArguments{Page: 0, PageSize: 10}, &reply)
	assert.NoError(t, err, "list error")
}

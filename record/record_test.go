// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/record"
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

func TestDeedPackUnpack(t *testing.T) {
	owner := makeAccount(0x11)
	creator := makeAccount(0x22)

	createdAt := time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	deed := &record.Deed{
		Id:              7,
		Address:         "1 Main St",
		Owner:           owner,
		TokenizedShares: 100,
		CreatedAt:       createdAt,
		UpdatedAt:       &updatedAt,
		CreatedBy:       creator,
		UpdatedBy:       creator,
		History: []record.HistoryEntry{
			{Timestamp: createdAt, Event: record.EventDeedCreated},
			{Timestamp: updatedAt, Event: record.EventDeedUpdated},
		},
	}

	packed, err := deed.Pack()
	assert.NoError(t, err, "pack error")

	unpacked, err := record.UnpackDeed(packed)
	assert.NoError(t, err, "unpack error")

	assert.Equal(t, deed.Id, unpacked.Id, "wrong id")
	assert.Equal(t, deed.Address, unpacked.Address, "wrong address")
	assert.Equal(t, deed.TokenizedShares, unpacked.TokenizedShares, "wrong shares")
	assert.Equal(t, owner.String(), unpacked.Owner.String(), "wrong owner")
	assert.Equal(t, creator.String(), unpacked.CreatedBy.String(), "wrong creator")
	assert.True(t, deed.CreatedAt.Equal(unpacked.CreatedAt), "wrong created at")
	assert.Equal(t, 2, len(unpacked.History), "wrong history length")
	assert.Equal(t, record.EventDeedCreated, unpacked.History[0].Event, "wrong first event")
}

func TestDeedUnpackNoUpdate(t *testing.T) {
	deed := &record.Deed{
		Id:              1,
		Address:         "2 High St",
		Owner:           makeAccount(0x33),
		TokenizedShares: 10,
		CreatedAt:       time.Now().UTC(),
		CreatedBy:       makeAccount(0x33),
		History: []record.HistoryEntry{
			{Timestamp: time.Now().UTC(), Event: record.EventDeedCreated},
		},
	}

	packed, err := deed.Pack()
	assert.NoError(t, err, "pack error")

	unpacked, err := record.UnpackDeed(packed)
	assert.NoError(t, err, "unpack error")
	assert.Nil(t, unpacked.UpdatedAt, "updated at set on fresh deed")
	assert.Nil(t, unpacked.UpdatedBy, "updated by set on fresh deed")
}

func TestUserPackUnpack(t *testing.T) {
	acc := makeAccount(0x44)
	admin := makeAccount(0x55)

	user := &record.User{
		Account:     acc,
		Name:        "alice",
		ContactInfo: "alice@example.com",
		Role:        "owner",
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   admin,
	}

	packed, err := user.Pack()
	assert.NoError(t, err, "pack error")

	unpacked, err := record.UnpackUser(packed)
	assert.NoError(t, err, "unpack error")
	assert.Equal(t, user.Name, unpacked.Name, "wrong name")
	assert.Equal(t, user.ContactInfo, unpacked.ContactInfo, "wrong contact info")
	assert.Equal(t, user.Role, unpacked.Role, "wrong role")
	assert.Equal(t, acc.String(), unpacked.Account.String(), "wrong account")
}

func TestUnpackGarbage(t *testing.T) {
	_, err := record.UnpackDeed([]byte("not json"))
	assert.Error(t, err, "garbage deed unexpectedly unpacked")

	_, err = record.UnpackUser([]byte{0x00, 0x01})
	assert.Error(t, err, "garbage user unexpectedly unpacked")
}

// ascending ids must produce ascending keys
func TestDeedKeyOrder(t *testing.T) {
	previous := record.DeedKey(0)
	for _, id := range []uint64{1, 2, 255, 256, 65535, 1 << 32, 1<<63 + 5} {
		key := record.DeedKey(id)
		assert.Equal(t, 8, len(key), "wrong key length")
		assert.True(t, bytes.Compare(previous, key) < 0, "keys not ascending at id %d", id)
		previous = key
	}
}

func TestIsOwnedBy(t *testing.T) {
	owner := makeAccount(0x66)
	other := makeAccount(0x77)

	deed := &record.Deed{
		Id:    3,
		Owner: owner,
	}

	assert.True(t, deed.IsOwnedBy(owner), "owner not recognised")
	assert.False(t, deed.IsOwnedBy(other), "non-owner accepted")
	assert.False(t, deed.IsOwnedBy(nil), "nil account accepted")
}

func TestTransferEvent(t *testing.T) {
	from := makeAccount(0x01)
	to := makeAccount(0x02)
	event := record.TransferEvent(40, from, to)
	assert.Contains(t, event, "40 shares", "missing share count")
	assert.Contains(t, event, from.String(), "missing source account")
	assert.Contains(t, event, to.String(), "missing destination account")
}

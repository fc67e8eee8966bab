// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/fault"
)

// history event texts
const (
	EventDeedCreated = "Deed created"
	EventDeedUpdated = "Deed updated"
)

// TransferEvent - history text for a completed share transfer
func TransferEvent(shares uint64, from *account.Account, to *account.Account) string {
	return fmt.Sprintf("Transferred %d shares from %s to %s", shares, from, to)
}

// HistoryEntry - one immutable audit event on a deed
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     string    `json:"event"`
}

// Deed - a fractionally tokenized real-estate record
//
// History is append only and in insertion order, which is also
// chronological order since every mutation appends exactly one entry
type Deed struct {
	Id              uint64           `json:"id"`
	Address         string           `json:"address"`
	Owner           *account.Account `json:"owner"`
	TokenizedShares uint64           `json:"tokenized_shares"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
	CreatedBy       *account.Account `json:"created_by"`
	UpdatedBy       *account.Account `json:"updated_by,omitempty"`
	History         []HistoryEntry   `json:"history"`
}

// User - a registered identity, keyed by its account
type User struct {
	Account     *account.Account `json:"account"`
	Name        string           `json:"name"`
	ContactInfo string           `json:"contact_info"`
	Role        string           `json:"role"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
	CreatedBy   *account.Account `json:"created_by"`
	UpdatedBy   *account.Account `json:"updated_by,omitempty"`
}

// DeedKey - the storage key for a deed id
//
// big endian so that ascending key order is ascending id order
func DeedKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// UserKey - the storage key for a user account
func UserKey(acc *account.Account) []byte {
	return acc.Bytes()
}

// Pack - serialize a deed for storage
func (d *Deed) Pack() ([]byte, error) {
	buffer, err := json.Marshal(d)
	if nil != err {
		return nil, fault.ProcessError(fmt.Sprintf("deed pack: %s", err))
	}
	return buffer, nil
}

// UnpackDeed - deserialize a stored deed
func UnpackDeed(buffer []byte) (*Deed, error) {
	deed := &Deed{}
	err := json.Unmarshal(buffer, deed)
	if nil != err {
		return nil, fault.ProcessError(fmt.Sprintf("deed unpack: %s", err))
	}
	return deed, nil
}

// Pack - serialize a user for storage
func (u *User) Pack() ([]byte, error) {
	buffer, err := json.Marshal(u)
	if nil != err {
		return nil, fault.ProcessError(fmt.Sprintf("user pack: %s", err))
	}
	return buffer, nil
}

// UnpackUser - deserialize a stored user
func UnpackUser(buffer []byte) (*User, error) {
	user := &User{}
	err := json.Unmarshal(buffer, user)
	if nil != err {
		return nil, fault.ProcessError(fmt.Sprintf("user unpack: %s", err))
	}
	return user, nil
}

// AppendHistory - add one audit entry to a deed
func (d *Deed) AppendHistory(at time.Time, event string) {
	d.History = append(d.History, HistoryEntry{
		Timestamp: at,
		Event:     event,
	})
}

// IsOwnedBy - check the deed's owner of record against an account
func (d *Deed) IsOwnedBy(acc *account.Account) bool {
	if nil == d.Owner || nil == acc {
		return false
	}
	return bytes.Equal(d.Owner.Bytes(), acc.Bytes())
}

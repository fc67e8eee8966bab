// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the share transfer state transition
//
// a deed tracks a single owner of record plus a count of outstanding
// shares. a transfer decrements the count; only when the count reaches
// exactly zero does the owner of record change. partial transfers never
// reassign ownership and shares never increase.
package ownership

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/account"
	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/record"
)

type ownershipData struct {
	sync.RWMutex

	log *logger.L

	requireSigned bool

	initialised bool
}

var globalData ownershipData

// Initialise - start the transfer engine
//
// requireSigned demands an ed25519 signature by the current owner over
// the packed transfer detail before any shares move
func Initialise(requireSigned bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ownership")
	globalData.log.Info("starting…")
	globalData.requireSigned = requireSigned

	globalData.initialised = true
	return nil
}

// Finalise - stop the transfer engine
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

// TransferDetail - the canonical signed form of a transfer request
type TransferDetail struct {
	DeedId uint64
	From   *account.Account
	To     *account.Account
	Shares uint64
}

// Pack - deterministic byte form for signing and verification
//
// layout: 8 byte big endian deed id, from account bytes,
// to account bytes, 8 byte big endian share count
func (detail *TransferDetail) Pack() []byte {
	buffer := make([]byte, 8, 64)
	binary.BigEndian.PutUint64(buffer, detail.DeedId)
	buffer = append(buffer, detail.From.Bytes()...)
	buffer = append(buffer, detail.To.Bytes()...)

	shares := make([]byte, 8)
	binary.BigEndian.PutUint64(shares, detail.Shares)
	return append(buffer, shares...)
}

// Apply - validate and apply one transfer to a deed in memory
//
// validation performs no mutation, so any error leaves the deed
// untouched and the caller can abandon the operation with no
// compensating step. on success the deed has its share count
// decremented, ownership reassigned if the count reached zero, update
// metadata stamped and one audit entry appended; persisting the
// modified deed is the caller's responsibility.
func Apply(deed *record.Deed, from *account.Account, to *account.Account, shares uint64, signature account.Signature, caller *account.Account, now time.Time) error {

	if nil == to {
		return fault.InvalidError("missing destination account")
	}

	if !deed.IsOwnedBy(from) {
		return fault.UnauthorizedError(
			fmt.Sprintf("account %s is not the owner of deed id=%d", from, deed.Id))
	}

	if 0 == shares {
		return fault.InvalidError(
			fmt.Sprintf("transfer of zero shares on deed id=%d", deed.Id))
	}

	if shares > deed.TokenizedShares {
		return fault.InvalidError(
			fmt.Sprintf("transfer of %d shares exceeds remaining %d on deed id=%d",
				shares, deed.TokenizedShares, deed.Id))
	}

	globalData.RLock()
	requireSigned := globalData.requireSigned
	globalData.RUnlock()

	if requireSigned {
		detail := TransferDetail{
			DeedId: deed.Id,
			From:   from,
			To:     to,
			Shares: shares,
		}
		err := deed.Owner.CheckSignature(detail.Pack(), signature)
		if nil != err {
			return err
		}
	}

	deed.TokenizedShares -= shares
	if 0 == deed.TokenizedShares {
		deed.Owner = to
	}
	deed.UpdatedAt = &now
	deed.UpdatedBy = caller
	deed.AppendHistory(now, record.TransferEvent(shares, from, to))

	if nil != globalData.log {
		globalData.log.Infof("transfer: deed: %d  shares: %d  from: %s  to: %s  remaining: %d",
			deed.Id, shares, from, to, deed.TokenizedShares)
	}
	return nil
}

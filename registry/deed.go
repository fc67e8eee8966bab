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
	"github.com/deedregistry/deedd/ownership"
	"github.com/deedregistry/deedd/record"
	"github.com/deedregistry/deedd/storage"
)

// read a deed or report which id was missing
func fetchDeed(id uint64) (*record.Deed, error) {
	packed := storage.Pool.Deeds.Get(record.DeedKey(id))
	if nil == packed {
		return nil, fault.NotFoundError(fmt.Sprintf("deed with id=%d not found", id))
	}
	return record.UnpackDeed(packed)
}

// GetDeed - read a single deed
func (r *registryData) GetDeed(id uint64) (*record.Deed, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	return fetchDeed(id)
}

// CreateDeed - register a new deed
//
// owner defaults to the caller when the payload carries none
func (r *registryData) CreateDeed(caller *account.Account, address string, shares uint64, owner *account.Account) (*record.Deed, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	err := authorize.Authorize(caller, authorize.CreateDeed, nil)
	if nil != err {
		return nil, err
	}

	if "" == address {
		return nil, fault.InvalidError("deed address must not be empty")
	}

	if nil == owner {
		owner = caller
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	id, err := r.deedIds.Next(trx)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	now := time.Now().UTC()
	deed := &record.Deed{
		Id:              id,
		Address:         address,
		Owner:           owner,
		TokenizedShares: shares,
		CreatedAt:       now,
		CreatedBy:       caller,
		History: []record.HistoryEntry{
			{Timestamp: now, Event: record.EventDeedCreated},
		},
	}

	packed, err := deed.Pack()
	if nil != err {
		trx.Abort()
		return nil, err
	}
	trx.Put(storage.Pool.Deeds, record.DeedKey(id), packed)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	r.log.Infof("created deed: id: %d  owner: %s  shares: %d", id, owner, shares)
	return deed, nil
}

// UpdateDeed - merge non-empty payload fields into a stored deed
//
// an empty address leaves the stored address unchanged. the share
// count cannot be changed here at all, it only moves by transfer, so
// zero means absent and any other value must match the stored count.
func (r *registryData) UpdateDeed(caller *account.Account, id uint64, address string, shares uint64) (*record.Deed, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	deed, err := fetchDeed(id)
	if nil != err {
		return nil, err
	}

	err = authorize.Authorize(caller, authorize.UpdateDeed, deed)
	if nil != err {
		return nil, err
	}

	if 0 != shares && shares != deed.TokenizedShares {
		return nil, fault.InvalidError(
			fmt.Sprintf("tokenized shares only change by transfer on deed id=%d", id))
	}

	if "" != address {
		deed.Address = address
	}

	now := time.Now().UTC()
	deed.UpdatedAt = &now
	deed.UpdatedBy = caller
	deed.AppendHistory(now, record.EventDeedUpdated)

	packed, err := deed.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Deeds, record.DeedKey(id), packed)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	r.log.Infof("updated deed: id: %d", id)
	return deed, nil
}

// DeleteDeed - remove a deed, returning its final state
//
// the id is never reissued for a later deed
func (r *registryData) DeleteDeed(caller *account.Account, id uint64) (*record.Deed, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	deed, err := fetchDeed(id)
	if nil != err {
		return nil, err
	}

	err = authorize.Authorize(caller, authorize.DeleteDeed, deed)
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Delete(storage.Pool.Deeds, record.DeedKey(id))

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	r.log.Infof("deleted deed: id: %d", id)
	return deed, nil
}

// ListDeeds - one zero-indexed page of deeds in ascending id order
//
// a page past the end is an empty sequence, never an error
func (r *registryData) ListDeeds(page uint64, pageSize uint64) ([]*record.Deed, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	deeds := []*record.Deed{}

	if 0 == pageSize || pageSize > math.MaxInt32 {
		return deeds, nil
	}

	offset := page * pageSize
	if 0 != page && offset/page != pageSize {
		return deeds, nil // offset overflowed, far past the end
	}
	if offset > math.MaxInt32 {
		return deeds, nil
	}

	cursor := storage.Pool.Deeds.NewFetchCursor()
	if offset > 0 {
		n, err := cursor.Skip(int(offset))
		if nil != err {
			return nil, err
		}
		if uint64(n) < offset {
			return deeds, nil
		}
	}

	elements, err := cursor.Fetch(int(pageSize))
	if nil != err {
		return nil, err
	}

	for _, element := range elements {
		deed, err := record.UnpackDeed(element.Value)
		if nil != err {
			return nil, err
		}
		deeds = append(deeds, deed)
	}
	return deeds, nil
}

// TransferDeed - move shares between accounts on one deed
//
// from defaults to the caller; all validation happens before any
// mutation so a failed transfer leaves the deed byte-for-byte intact
func (r *registryData) TransferDeed(caller *account.Account, id uint64, from *account.Account, to *account.Account, shares uint64, signature account.Signature) (*record.Deed, error) {
	r.operation.Lock()
	defer r.operation.Unlock()

	deed, err := fetchDeed(id)
	if nil != err {
		return nil, err
	}

	err = authorize.Authorize(caller, authorize.TransferDeed, deed)
	if nil != err {
		return nil, err
	}

	if nil == from {
		from = caller
	}

	now := time.Now().UTC()
	err = ownership.Apply(deed, from, to, shares, signature, caller, now)
	if nil != err {
		return nil, err
	}

	packed, err := deed.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Deeds, record.DeedKey(id), packed)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	return deed, nil
}

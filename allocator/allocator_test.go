// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocator_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/allocator"
	"github.com/deedregistry/deedd/storage"
)

const (
	databaseFileName = "test.leveldb"
)

func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func TestMain(m *testing.M) {

	curPath := os.Getenv("PWD")
	logConfig := logger.Configuration{
		Directory: curPath,
		File:      "allocator_test.log",
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
	os.RemoveAll(fmt.Sprintf("%s/allocator_test.log", curPath))
	os.RemoveAll(databaseFileName)

	os.Exit(rc)
}

func allocate(t *testing.T, a *allocator.Allocator) uint64 {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	id, err := a.Next(trx)
	if nil != err {
		trx.Abort()
		t.Fatalf("allocate error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
	return id
}

func TestSequence(t *testing.T) {
	setup(t)
	defer teardown(t)

	a := allocator.New("deed-id")

	if 0 != a.Current() {
		t.Fatalf("fresh sequence current: actual: %d  expected: 0", a.Current())
	}

	for expected := uint64(1); expected <= 5; expected += 1 {
		id := allocate(t, a)
		if expected != id {
			t.Errorf("id: actual: %d  expected: %d", id, expected)
		}
	}

	if 5 != a.Current() {
		t.Errorf("current: actual: %d  expected: 5", a.Current())
	}
}

func TestIndependentSequences(t *testing.T) {
	setup(t)
	defer teardown(t)

	a := allocator.New("deed-id")
	b := allocator.New("other-id")

	allocate(t, a)
	allocate(t, a)
	id := allocate(t, b)
	if 1 != id {
		t.Errorf("id: actual: %d  expected: 1", id)
	}
}

// an aborted transaction must not consume an id
func TestAbortDoesNotConsume(t *testing.T) {
	setup(t)
	defer teardown(t)

	a := allocator.New("deed-id")
	allocate(t, a)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	id, err := a.Next(trx)
	if nil != err {
		t.Fatalf("allocate error: %s", err)
	}
	if 2 != id {
		t.Errorf("id: actual: %d  expected: 2", id)
	}
	trx.Abort()

	id = allocate(t, a)
	if 2 != id {
		t.Errorf("id after abort: actual: %d  expected: 2", id)
	}
}

// ids resume after close and reopen
func TestRestartResume(t *testing.T) {
	setup(t)
	defer teardown(t)

	a := allocator.New("deed-id")
	allocate(t, a)
	allocate(t, a)
	allocate(t, a)

	storage.Finalise()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage reinitialise error: %s", err)
	}

	id := allocate(t, a)
	if 4 != id {
		t.Errorf("id after restart: actual: %d  expected: 4", id)
	}
}

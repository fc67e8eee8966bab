// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - process run mode
//
// mutating operations are only available in Normal mode; the daemon
// starts in Starting until all subsystems are initialised and drops to
// Stopped during shutdown
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/fault"
	"github.com/deedregistry/deedd/network"
)

// Mode - type to hold the mode
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Starting
	Normal
	maximum
)

var globalData struct {
	sync.RWMutex
	log     *logger.L
	mode    Mode
	testing bool
	network string

	// set once during initialise
	initialised bool
}

// Initialise - set up the mode system
func Initialise(networkName string) error {

	// ensure start up in starting mode
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	if !network.Valid(networkName) {
		return fault.InvalidError("network: \"" + networkName + "\" is not supported")
	}

	globalData.mode = Starting
	globalData.testing = network.IsTesting(networkName)
	globalData.network = networkName

	globalData.initialised = true

	return nil
}

// Finalise - shutdown mode handling
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	Set(Stopped)

	globalData.Lock()
	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// Set - change mode
func Set(mode Mode) {

	if mode >= Stopped && mode < maximum {
		globalData.Lock()
		globalData.mode = mode
		globalData.Unlock()

		globalData.log.Infof("set: %s", mode)
	} else {
		globalData.log.Errorf("ignore invalid set: %d", mode)
	}
}

// Is - test for a specific mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsNot - test for not a specific mode
func IsNot(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode != globalData.mode
}

// IsTesting - test for running on a test network
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// String - name of the current mode
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// Network - name of the network
func Network() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.network
}

// String - current mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Starting:
		return "Starting"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}

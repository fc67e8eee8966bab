// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/counter"
	"github.com/deedregistry/deedd/mode"
	"github.com/deedregistry/deedd/registry"
	"github.com/deedregistry/deedd/rpc/deed"
	"github.com/deedregistry/deedd/rpc/node"
	"github.com/deedregistry/deedd/rpc/user"
)

// Create - make the rpc server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(deed.New(log, mode.Is, registry.Get()))
	_ = server.Register(user.New(log, mode.Is, registry.Get()))
	_ = server.Register(node.New(log, start, version, rpcCount, registry.Get()))

	return server
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/counter"
	"github.com/deedregistry/deedd/mode"
	"github.com/deedregistry/deedd/registry"
	"github.com/deedregistry/deedd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry registry.Registry
	counter  *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, count *counter.Counter, reg registry.Registry) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: reg,
		counter:  count,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Network string `json:"network"`
	Mode    string `json:"mode"`
	Deeds   uint64 `json:"deeds"`
	Users   uint64 `json:"users"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - daemon status summary
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	deeds, users := node.Registry.Counts()

	reply.Network = mode.Network()
	reply.Mode = mode.String()
	reply.Deeds = deeds
	reply.Users = users
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/mode"
	"github.com/deedregistry/deedd/registry"
)

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
}

// this matches anything not matched and returns error
func (s *httpHandler) root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// checks the request source against the allow list for an api
func (s *httpHandler) isAllowed(api string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last <= 0 {
		return false
	}

	cidr, ok := s.allow[api]
	if !ok {
		return false
	}

	addr := strings.Trim(r.RemoteAddr[:last], "[]")
	ip := net.ParseIP(addr)
	if nil == ip {
		return false
	}

	for _, n := range cidr {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// performs a call to any normal RPC
func (s *httpHandler) rpc(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("rpc", r) {
		s.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if connectionCountRPC.Increment() > s.maximumConnections {
		connectionCountRPC.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer connectionCountRPC.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// to allow a GET for the same response as the Node.Info RPC
func (s *httpHandler) details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r) {
		s.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	connectionCountRPC.Increment()
	defer connectionCountRPC.Decrement()

	type theReply struct {
		Network string `json:"network"`
		Mode    string `json:"mode"`
		Deeds   uint64 `json:"deeds"`
		Users   uint64 `json:"users"`
		RPCs    uint64 `json:"rpcs"`
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
	}

	reply := theReply{
		Network: mode.Network(),
		Mode:    mode.String(),
		RPCs:    connectionCountRPC.Uint64(),
		Version: s.version,
		Uptime:  time.Since(s.start).String(),
	}
	if reg := registry.Get(); nil != reg {
		reply.Deeds, reply.Users = reg.Counts()
	}

	sendReply(w, reply)
}

func sendReply(w http.ResponseWriter, reply interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(reply); nil != err {
		sendInternalServerError(w)
	}
}

func sendNotFound(w http.ResponseWriter) {
	http.Error(w, "404 page not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	http.Error(w, "403 forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	http.Error(w, "429 too many requests", http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	http.Error(w, "500 internal server error", http.StatusInternalServerError)
}

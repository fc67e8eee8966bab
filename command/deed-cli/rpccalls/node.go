// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	rpcNode "github.com/deedregistry/deedd/rpc/node"
)

// GetNodeInfo - request status from deedd (must be matching version)
func (client *Client) GetNodeInfo() (*rpcNode.InfoReply, error) {
	var reply rpcNode.InfoReply
	if err := client.client.Call("Node.Info", rpcNode.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	client.printJson("Node Info Reply", reply)

	return &reply, nil
}

// GetNodeInfoCompat - request status from deedd (any version)
func (client *Client) GetNodeInfoCompat() (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := client.client.Call("Node.Info", rpcNode.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return reply, nil
}

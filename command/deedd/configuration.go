// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/deedregistry/deedd/authorize"
	"github.com/deedregistry/deedd/configuration"
	"github.com/deedregistry/deedd/network"
	"github.com/deedregistry/deedd/rpc"
	"github.com/deedregistry/deedd/rpc/listeners"
	"github.com/deedregistry/deedd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = network.Live + ".leveldb"
	defaultTestingDatabase  = network.Testing + ".leveldb"
	defaultLocalDatabase    = network.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "deedd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - the leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon configuration
type Configuration struct {
	DataDirectory string `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string `gluamapper:"pidfile" json:"pidfile"`
	Network       string `gluamapper:"network" json:"network"`
	ProfileHTTP   string `gluamapper:"profile_http" json:"profile_http"`

	RequireSignedTransfers bool `gluamapper:"require_signed_transfers" json:"require_signed_transfers"`

	Database DatabaseType `gluamapper:"database" json:"database"`

	Authorization authorize.Configuration     `gluamapper:"authorization" json:"authorization"`
	ClientRPC     listeners.RPCConfiguration  `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC      rpc.HTTPSConfiguration      `gluamapper:"https_rpc" json:"https_rpc"`
	Logging       logger.Configuration        `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Network:       network.Live,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		Authorization: authorize.Configuration{
			RoleBased:      true,
			OwnershipBased: true,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: rpc.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the network name is not recognised; if the database
	// file was not changed from default switch to the appropriate
	// per-network default
	options.Network = strings.ToLower(options.Network)
	if !network.Valid(options.Network) {
		return nil, fmt.Errorf("network: %q is not supported", options.Network)
	}

	if options.Database.Name == defaultLiveDatabase {
		switch options.Network {
		case network.Live:
			// already correct default
		case network.Testing:
			options.Database.Name = defaultTestingDatabase
		case network.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("network: %s no default database setting", options.Network)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain a path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

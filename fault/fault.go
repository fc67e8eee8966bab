// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Deed Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError       GenericError
	InvalidError      GenericError
	NotFoundError     GenericError
	ProcessError      GenericError
	UnauthorizedError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ProcessError("already initialised")
	CannotDecodeAccount      = InvalidError("cannot decode account")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ChecksumMismatch         = InvalidError("checksum mismatch")
	CounterOverflow          = ProcessError("id counter overflow")
	DatabaseIsNotSet         = ProcessError("database is not set")
	DeedNotFound             = NotFoundError("deed not found")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidIpAddress         = InvalidError("invalid ip address")
	InvalidItem              = InvalidError("invalid item")
	InvalidKeyLength         = InvalidError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidSignature         = InvalidError("invalid signature")
	KeyFileExists            = ExistsError("key file already exists")
	MissingParameters        = InvalidError("missing parameters")
	NotAvailableDuringStart  = ProcessError("not available during start")
	NotInitialised           = ProcessError("not initialised")
	NotPublicKey             = InvalidError("not a public key")
	RateLimiting             = ProcessError("rate limiting")
	UserAlreadyExists        = ExistsError("user already exists")
	UserNotFound             = NotFoundError("user not found")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e UnauthorizedError) Error() string { return string(e) }

// IsErrExists - determine if an error is from the exists class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an error is from the invalid class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if an error is from the not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if an error is from the process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrUnauthorized - determine if an error is from the unauthorized class
func IsErrUnauthorized(e error) bool { _, ok := e.(UnauthorizedError); return ok }

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regnet Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type NotAuthorizedError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised            = ProcessError("already initialised")
	ErrCertificateFileExists         = ExistsError("certificate file already exists")
	ErrCorruptedPropertyRecord       = ProcessError("property record cannot be decoded")
	ErrCorruptedUserRecord           = ProcessError("user record cannot be decoded")
	ErrInsufficientFunds             = InvalidError("credit balance does not cover the property price")
	ErrInvalidChain                  = InvalidError("invalid chain")
	ErrInvalidCount                  = InvalidError("invalid count")
	ErrInvalidIPAddress              = InvalidError("invalid ip address")
	ErrInvalidKeyComponent           = InvalidError("composite key component is invalid")
	ErrInvalidPrice                  = InvalidError("price must be a positive number")
	ErrInvalidPropertyStatus         = InvalidError("property status is not a valid value")
	ErrInvalidStructPointer          = InvalidError("invalid struct pointer")
	ErrInvalidVoucher                = InvalidError("voucher id does not match any denomination")
	ErrKeyFileExists                 = ExistsError("key file already exists")
	ErrMissingParameters             = InvalidError("missing parameters")
	ErrNotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	ErrNotInitialised                = ProcessError("not initialised")
	ErrNotPropertyOwner              = NotAuthorizedError("only the recorded owner may update the property")
	ErrNotRegistrar                  = NotAuthorizedError("caller is not a registrar")
	ErrPropertyAlreadyExists         = ExistsError("property is already registered on the network")
	ErrPropertyNotForSale            = InvalidError("property is not on sale")
	ErrPropertyNotFound              = NotFoundError("property is not found on the network")
	ErrRateLimiting                  = ProcessError("rate limiting")
	ErrSelfPurchase                  = InvalidError("buyer is already the owner of the property")
	ErrTransactionInUse              = ProcessError("transaction already in use")
	ErrUserAlreadyApproved           = ExistsError("user is already approved on the network")
	ErrUserAlreadyExists             = ExistsError("user is already registered on the network")
	ErrUserNotApproved               = NotAuthorizedError("user is not approved on the network")
	ErrUserNotFound                  = NotFoundError("user is not registered on the network")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e NotAuthorizedError) Error() string { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrNotAuthorized(e error) bool { _, ok := e.(NotAuthorizedError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }

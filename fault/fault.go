// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PoolError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised = ProcessError("already initialised")
	ErrFrameDataTooLong   = LengthError("frame data too long")
	ErrFrameExpired       = InvalidError("frame deadline already passed")
	ErrInvalidFrame       = InvalidError("frame is invalid")
	ErrNotInitialised     = ProcessError("not initialised")
	ErrPoolExhausted      = PoolError("block pool is exhausted")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e PoolError) Error() string     { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrPool(e error) bool     { _, ok := e.(PoolError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

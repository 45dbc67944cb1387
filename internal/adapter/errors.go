// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the server rejects the session
	// token. The caller is expected to re-establish the session.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNoSession is returned when an operation requiring a session
	// token runs before one has been set.
	ErrNoSession = errors.New("no session token set")
)

// DecodeError reports one wire row that failed typed decoding. Decode
// failures are row-local: the row is dropped and the rest of the
// response is still returned.
type DecodeError struct {
	Entity string
	RawID  string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s %q: %v", e.Entity, e.RawID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

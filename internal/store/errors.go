// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package store

import "errors"

var (
	ErrExecutingQuery       = errors.New("error executing query")
	ErrScanningRow          = errors.New("error scanning row")
	ErrScanningRows         = errors.New("error during rows iteration")
	ErrBeginningTransaction = errors.New("error beginning transaction")
	ErrCommitingTransaction = errors.New("error commiting transaction")
	ErrPreparingStatement   = errors.New("error preparing statement")
)

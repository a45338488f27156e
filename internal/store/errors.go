// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores and repositories to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] when no value is
	// stored under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptRecord is returned by the typed repositories when a stored
	// value cannot be decoded into its record type.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrUnknownDriver is returned by [NewStorages] for a driver name it
	// cannot build a store for.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL store when an operation fails before any value can be returned.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a value row fails.
	ErrScanningRow = errors.New("failed to scan value row")
)

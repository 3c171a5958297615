// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const (
	firstPage       uint64 = 1
	defaultPageSize uint64 = 100
	maxPageSize     uint64 = 500
)

// Offset returns the number of rows to skip to reach page, pages start at 1.
func Offset(page int64, pageSize uint64) uint64 {
	if page < int64(firstPage) {
		return 0
	}
	return uint64(page-1) * pageSize
}

// PageSize clamps a requested page size, zero or negative selects the default.
func PageSize(size int64) uint64 {
	switch {
	case size <= 0:
		return defaultPageSize
	case uint64(size) > maxPageSize:
		return maxPageSize
	default:
		return uint64(size)
	}
}

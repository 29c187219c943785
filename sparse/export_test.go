// SPDX-License-Identifier: MIT

package sparse

// Test bridge: exposes the header conversions to sparse_test only.
var (
	ExportedDimFromHeader = dimFromHeader
	ExportedHeaderFromDim = headerFromDim
)

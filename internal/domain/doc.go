// Package domain contains the core model for aocinput: the error taxonomy,
// workspace configuration, load shapes and the pure text transformations
// (line splitting, paragraph grouping, integer conversion).
//
// The domain does not touch the filesystem. Infra adapters read bytes and map
// them into these types.
package domain

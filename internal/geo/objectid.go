// Package geo holds the small geographic value types shared by the
// hierarchy, tile and eye packages.
package geo

import "strconv"

// ObjectID identifies a geographic object. It is opaque and only used
// for ordering and grouping.
type ObjectID uint64

// MakeObjectID converts an encoded id as found in hierarchy dumps.
// The dumps historically write the id as a signed decimal, the id
// space itself is unsigned.
func MakeObjectID(encoded int64) ObjectID {
	return ObjectID(uint64(encoded))
}

// Encoded returns the signed form used by the dump format.
func (id ObjectID) Encoded() int64 {
	return int64(uint64(id))
}

func (id ObjectID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

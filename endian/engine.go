// Package endian provides the byte order engine used for all wire-field
// extraction in the ttbin decoder.
//
// The package combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so decoders can both
// read fields from payload slices and, in tests, append synthetic fields to
// build payloads with one engine value.
//
// The ttbin wire format is little-endian throughout, across both dialects, so
// most callers only ever need GetLittleEndianEngine. The big-endian engine
// exists for symmetry and for exercising the engine abstraction in tests.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so the engine is
// always a stateless, immutable value that is safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. This is the byte
// order of every numeric field in the ttbin format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

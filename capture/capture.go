// Package capture loads ttbin capture files, transparently decompressing
// archived captures.
//
// Captures collected for reverse engineering are routinely shipped around and
// archived compressed. Rather than requiring the caller to decompress first,
// the loader sniffs the leading magic bytes and unwraps gzip, Zstandard,
// S2/Snappy, and LZ4 frames; anything else is treated as a plain capture and
// passed through untouched.
//
// Decompression always materializes the whole capture in memory. Captures are
// single activities recorded by a watch, small by construction, and the
// decoder downstream makes one forward pass over the bytes anyway.
package capture

import (
	"bytes"
	"fmt"
	"os"

	"github.com/arloliu/ttbin/errs"
)

// Archive identifies the compression framing of a capture file.
type Archive uint8

const (
	ArchiveNone Archive = iota // plain capture, no compression framing
	ArchiveGzip
	ArchiveZstd
	ArchiveS2
	ArchiveLZ4
)

func (a Archive) String() string {
	switch a {
	case ArchiveNone:
		return "None"
	case ArchiveGzip:
		return "Gzip"
	case ArchiveZstd:
		return "Zstd"
	case ArchiveS2:
		return "S2"
	case ArchiveLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compression frame magic numbers. The S2 magic is the stream-identifier
// chunk header shared by the snappy ("sNaPpY") and S2 ("S2sTwO") framings;
// the reader downstream accepts both.
var (
	magicGzip = []byte{0x1F, 0x8B}
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4  = []byte{0x04, 0x22, 0x4D, 0x18}
	magicS2   = []byte{0xFF, 0x06, 0x00, 0x00}
)

// Sniff identifies the archive framing of capture data from its leading
// magic bytes. Data matching no known magic is a plain capture.
func Sniff(data []byte) Archive {
	switch {
	case bytes.HasPrefix(data, magicGzip):
		return ArchiveGzip
	case bytes.HasPrefix(data, magicZstd):
		return ArchiveZstd
	case bytes.HasPrefix(data, magicLZ4):
		return ArchiveLZ4
	case bytes.HasPrefix(data, magicS2):
		return ArchiveS2
	default:
		return ArchiveNone
	}
}

// Decode returns the raw capture bytes, decompressing data first when it
// carries a recognized compression frame.
func Decode(data []byte) ([]byte, error) {
	switch Sniff(data) {
	case ArchiveGzip:
		return decodeGzip(data)
	case ArchiveZstd:
		return decodeZstd(data)
	case ArchiveS2:
		return decodeS2(data)
	case ArchiveLZ4:
		return decodeLZ4(data)
	default:
		return data, nil
	}
}

// Load reads the capture at path and returns its raw, decompressed bytes.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open capture %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrEmptyCapture, path)
	}

	raw, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decompress capture %s (%s): %w", path, Sniff(data), err)
	}

	return raw, nil
}

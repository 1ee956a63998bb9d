package record

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/ttbin/errs"
	"github.com/arloliu/ttbin/format"
)

// StatusRecord is the partially understood tag 0x23. Its first three fields
// decode as two 16-bit words and a byte; everything past them is opaque, so
// the whole payload is also retained raw for hex display.
type StatusRecord struct {
	U1  uint16 // byte offset 0-1
	U2  uint16 // byte offset 2-3
	U3  uint8  // byte offset 4
	Raw []byte // the full payload, including the fields above
}

func (s *StatusRecord) Tag() format.Tag { return format.TagStatus }

// Digest returns the xxHash64 of the payload. Repeated digests across a
// capture flag identical unknown payloads without eyeballing hex dumps.
func (s *StatusRecord) Digest() uint64 {
	return xxhash.Sum64(s.Raw)
}

func (s *StatusRecord) Parse(data []byte, _ format.Dialect) error {
	if len(data) != StatusSize {
		return fmt.Errorf("%w: status payload is %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), StatusSize)
	}

	s.U1 = wire.Uint16(data[0:2])
	s.U2 = wire.Uint16(data[2:4])
	s.U3 = data[4]
	s.Raw = append([]byte(nil), data...)

	return nil
}

func (s *StatusRecord) Bytes(_ format.Dialect) []byte {
	b := make([]byte, StatusSize)
	copy(b, s.Raw)
	wire.PutUint16(b[0:2], s.U1)
	wire.PutUint16(b[2:4], s.U2)
	b[4] = s.U3

	return b
}

// Timestamped35 is the unclassified tag 0x35: two opaque bytes followed by an
// epoch timestamp.
type Timestamped35 struct {
	Unknown [2]byte // byte offset 0-1
	Time    uint32  // epoch seconds, byte offset 2-5
}

func (t *Timestamped35) Tag() format.Tag { return format.TagTimestamped35 }

func (t *Timestamped35) Parse(data []byte, _ format.Dialect) error {
	if len(data) != Timestamped35Size {
		return fmt.Errorf("%w: tag 0x35 payload is %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), Timestamped35Size)
	}

	copy(t.Unknown[:], data[0:2])
	t.Time = wire.Uint32(data[2:6])

	return nil
}

func (t *Timestamped35) Bytes(_ format.Dialect) []byte {
	b := make([]byte, 0, Timestamped35Size)
	b = append(b, t.Unknown[:]...)
	b = wire.AppendUint32(b, t.Time)

	return b
}

// Unclassified is any tag with a known fixed length but no understood
// structure (0x26, 0x30, 0x37). The payload is kept verbatim and rendered as
// a hex dump.
type Unclassified struct {
	RecordTag format.Tag
	Raw       []byte
}

func (u *Unclassified) Tag() format.Tag { return u.RecordTag }

// Digest returns the xxHash64 of the payload, used to spot repeated unknown
// payload shapes across a capture.
func (u *Unclassified) Digest() uint64 {
	return xxhash.Sum64(u.Raw)
}

func (u *Unclassified) Parse(data []byte, d format.Dialect) error {
	want, ok := PayloadSize(u.RecordTag, d)
	if !ok {
		return fmt.Errorf("%w: no known length for tag %s", errs.ErrInvalidRecordSize, u.RecordTag)
	}
	if len(data) != want {
		return fmt.Errorf("%w: tag %s payload is %d bytes, want %d", errs.ErrInvalidRecordSize, u.RecordTag, len(data), want)
	}

	u.Raw = append([]byte(nil), data...)

	return nil
}

func (u *Unclassified) Bytes(_ format.Dialect) []byte {
	return append([]byte(nil), u.Raw...)
}

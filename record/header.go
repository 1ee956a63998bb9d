package record

import (
	"fmt"
	"time"

	"github.com/arloliu/ttbin/errs"
	"github.com/arloliu/ttbin/format"
)

// Header is the file/session metadata record (tag 0x20), normally the first
// record in a capture. Its format marker selects the dialect for the rest of
// the pass.
type Header struct {
	FormatMarker byte    // byte offset 0
	Version      [4]byte // byte offset 1-4, watch firmware version
	Unknown      [2]byte // byte offset 5-6, purpose not established
	Timestamp    uint32  // byte offset 7-10, epoch seconds
	Reserved     []byte  // byte offset 11..end, retained for diagnostics
}

func (h *Header) Tag() format.Tag { return format.TagHeader }

// Dialect returns the schema dialect the format marker selects.
func (h *Header) Dialect() format.Dialect {
	return format.DetectDialect(h.FormatMarker)
}

// TimeAsTime returns the creation timestamp as UTC wall-clock time.
func (h *Header) TimeAsTime() time.Time {
	return time.Unix(int64(h.Timestamp), 0).UTC()
}

// Parse decodes a header payload. The payload length differs between
// dialects; only the reserved tail width changes, the leading fields share
// one layout.
func (h *Header) Parse(data []byte, d format.Dialect) error {
	want, _ := PayloadSize(format.TagHeader, d)
	if len(data) != want {
		return fmt.Errorf("%w: header payload is %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), want)
	}

	h.FormatMarker = data[0]
	copy(h.Version[:], data[1:5])
	copy(h.Unknown[:], data[5:7])
	h.Timestamp = wire.Uint32(data[7:11])
	h.Reserved = append([]byte(nil), data[11:]...)

	return nil
}

// Bytes re-encodes the header payload for dialect d. A nil or short Reserved
// tail is zero-padded to the dialect's width.
func (h *Header) Bytes(d format.Dialect) []byte {
	size, _ := PayloadSize(format.TagHeader, d)
	b := make([]byte, 0, size)
	b = append(b, h.FormatMarker)
	b = append(b, h.Version[:]...)
	b = append(b, h.Unknown[:]...)
	b = wire.AppendUint32(b, h.Timestamp)
	b = append(b, h.Reserved...)
	for len(b) < size {
		b = append(b, 0)
	}

	return b[:size]
}

// RecordLengths is the record-length table (tag 0x16). Each entry appears to
// be a tag byte followed by a 16-bit length-plus-one, but the table is
// consumed without being semantically decoded.
type RecordLengths struct {
	Raw []byte
}

func (r *RecordLengths) Tag() format.Tag { return format.TagRecordLengths }

func (r *RecordLengths) Parse(data []byte, _ format.Dialect) error {
	if len(data) != RecordLengthsSize {
		return fmt.Errorf("%w: record-length table is %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), RecordLengthsSize)
	}

	r.Raw = append([]byte(nil), data...)

	return nil
}

func (r *RecordLengths) Bytes(_ format.Dialect) []byte {
	b := make([]byte, RecordLengthsSize)
	copy(b, r.Raw)

	return b
}

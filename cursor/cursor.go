// Package cursor implements the forward-only byte cursor the decoder walks a
// capture with.
//
// The cursor is deliberately minimal: it reads a single tag byte or an exact
// payload length, tracks the absolute stream offset for diagnostics, and never
// seeks or rewinds. A short read on a fixed-length payload is always a hard
// error; the cursor never hands back partial data silently.
package cursor

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/ttbin/errs"
	"github.com/arloliu/ttbin/format"
)

// Cursor reads sequentially from an underlying stream and tracks the absolute
// byte offset of the next unread byte.
//
// Note: The Cursor is NOT thread-safe. A capture is decoded by exactly one
// goroutine in a single forward pass.
type Cursor struct {
	r      io.Reader
	offset int64
	tag    [1]byte
}

// New creates a Cursor over r, starting at offset zero.
func New(r io.Reader) *Cursor {
	return &Cursor{r: r}
}

// Offset returns the absolute offset of the next unread byte.
func (c *Cursor) Offset() int64 {
	return c.offset
}

// ReadTag reads the next record's one-byte tag.
//
// Returns io.EOF unwrapped when the stream ends exactly at a record boundary;
// that is the only clean termination condition of a pass. Any other failure is
// returned as-is from the underlying reader.
func (c *Cursor) ReadTag() (format.Tag, error) {
	n, err := io.ReadFull(c.r, c.tag[:])
	c.offset += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}

		return 0, err
	}

	return format.Tag(c.tag[0]), nil
}

// ReadExact reads exactly n bytes of record payload into a freshly allocated
// slice owned by the caller.
//
// Any short read, including a clean end-of-stream mid-payload, fails with
// errs.ErrTruncatedRecord carrying the offset where the payload began and the
// byte counts involved.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	start := c.offset
	buf := make([]byte, n)
	got, err := io.ReadFull(c.r, buf)
	c.offset += int64(got)
	if err != nil {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, got %d",
			errs.ErrTruncatedRecord, n, start, got)
	}

	return buf, nil
}

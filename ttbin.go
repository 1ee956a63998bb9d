// Package ttbin decodes the tag-delimited binary activity-log format produced
// by TomTom-style GPS sport watches into human-readable diagnostic text.
//
// The format is a flat stream of records. Each record is a one-byte tag
// followed by a fixed-length payload whose length depends on the tag and on
// the schema dialect the file header selects; there is no length prefix, no
// padding, and no alignment between records. The decoder makes a single
// forward pass: read a tag, look up the payload length, decode, render,
// repeat until the stream ends.
//
// The package exists for reverse engineering and inspection of captures, not
// for production data ingestion. It never writes or modifies the source
// stream, never seeks, and does not attempt to recover a desynchronized
// stream: when it meets a tag it does not know, it reports the tag and its
// offset and reads the very next byte as a new tag, because the unknown
// payload's length is unknowable.
//
// Basic usage:
//
//	f, _ := os.Open("activity.ttbin")
//	defer f.Close()
//	stats, err := ttbin.Dump(f, os.Stdout)
//
// Compressed captures are handled one layer up, by the capture package.
package ttbin

import (
	"errors"
	"io"
	"time"

	"github.com/arloliu/ttbin/cursor"
	"github.com/arloliu/ttbin/format"
	"github.com/arloliu/ttbin/record"
	"github.com/arloliu/ttbin/render"
)

// passState is the pump's position in its lifecycle. A pass is running until
// the stream either ends cleanly at a record boundary (done) or fails a
// fixed-length payload read (fatal). Both terminal states end the pass;
// fatal additionally surfaces an error to the caller.
type passState uint8

const (
	stateRunning passState = iota
	stateDone
	stateFatal
)

// Stats summarizes one completed or aborted pass.
type Stats struct {
	Records     int   // classified records decoded and rendered
	UnknownTags int   // tag bytes with no known decoder
	Bytes       int64 // total bytes consumed from the stream
}

// Option configures a Dump pass.
type Option func(*pump)

// WithLocation pins the zone used for local-time timestamps in the output.
// The default is the process's local zone.
func WithLocation(loc *time.Location) Option {
	return func(p *pump) {
		p.renderer.WithLocation(loc)
	}
}

// WithDialect sets the dialect assumed before a header record is seen. The
// default is the current dialect, the fail-closed assumption for captures
// with an unrecognized or missing header.
func WithDialect(d format.Dialect) Option {
	return func(p *pump) {
		p.dialect = d
		p.renderer.SetDialect(d)
	}
}

type pump struct {
	cur      *cursor.Cursor
	renderer *render.Renderer
	out      io.Writer

	dialect  format.Dialect
	selected bool
	state    passState
	stats    Stats
}

// Dump decodes one capture stream from r, writing diagnostic text to w, and
// returns pass statistics.
//
// The pass terminates successfully when the stream ends exactly at a tag
// boundary. A payload truncated mid-record aborts the pass with an error
// wrapping errs.ErrTruncatedRecord; no partial record is ever rendered. The
// returned Stats are valid in both cases and cover everything decoded up to
// the point of termination.
func Dump(r io.Reader, w io.Writer, opts ...Option) (Stats, error) {
	p := &pump{
		cur:      cursor.New(r),
		renderer: render.New(format.DialectCurrent),
		out:      w,
		dialect:  format.DialectCurrent,
	}
	for _, opt := range opts {
		opt(p)
	}

	err := p.run()
	p.stats.Bytes = p.cur.Offset()

	return p.stats, err
}

func (p *pump) run() error {
	for p.state == stateRunning {
		tag, err := p.cur.ReadTag()
		if errors.Is(err, io.EOF) {
			// Clean end of stream at a record boundary.
			p.state = stateDone

			return nil
		}
		if err != nil {
			p.state = stateFatal

			return err
		}

		if err := p.step(tag); err != nil {
			p.state = stateFatal

			return err
		}
	}

	return nil
}

// step consumes and renders the record for one tag byte.
func (p *pump) step(tag format.Tag) error {
	size, ok := record.PayloadSize(tag, p.dialect)
	if !ok {
		// No known layout means no known length: report the tag at its own
		// offset and resume with the next byte. The stream may desynchronize
		// here; inventing a skip length would be worse.
		_, _ = io.WriteString(p.out, p.renderer.UnknownTag(tag, p.cur.Offset()-1))
		p.stats.UnknownTags++

		return nil
	}

	payload, err := p.readPayload(tag, size)
	if err != nil {
		return err
	}

	// A header decodes under the dialect its own marker names, which may not
	// be the pass dialect yet; every other record uses the pass dialect.
	recDialect := p.dialect
	if tag == format.TagHeader {
		recDialect = format.DetectDialect(payload[0])
	}

	rec, err := record.Decode(tag, payload, recDialect)
	if err != nil {
		return err
	}

	if h, isHeader := rec.(*record.Header); isHeader && !p.selected {
		// The dialect is selected exactly once per pass, from the first
		// header's format marker.
		p.dialect = h.Dialect()
		p.selected = true
		p.renderer.SetDialect(p.dialect)
	}

	_, _ = io.WriteString(p.out, p.renderer.Render(rec))
	p.stats.Records++

	return nil
}

// readPayload reads a record's fixed-length payload.
//
// The header is the one record whose length depends on information inside
// itself: the format marker in its first byte decides between the legacy and
// current layouts. It is read in two steps, marker first.
func (p *pump) readPayload(tag format.Tag, size int) ([]byte, error) {
	if tag != format.TagHeader {
		return p.cur.ReadExact(size)
	}

	marker, err := p.cur.ReadExact(1)
	if err != nil {
		return nil, err
	}

	size, _ = record.PayloadSize(tag, format.DetectDialect(marker[0]))
	rest, err := p.cur.ReadExact(size - 1)
	if err != nil {
		return nil, err
	}

	return append(marker, rest...), nil
}

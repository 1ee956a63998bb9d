// Package errs defines the sentinel errors shared across the ttbin decoder.
//
// All errors are plain sentinel values intended for use with errors.Is. Call
// sites wrap them with fmt.Errorf and %w to attach context such as the stream
// offset or the record tag.
package errs

import "errors"

var (
	// ErrTruncatedRecord indicates a fixed-length payload read returned fewer
	// bytes than the layout requires. This is always fatal: the stream cannot
	// be resynchronized once a record boundary is lost.
	ErrTruncatedRecord = errors.New("truncated record payload")

	// ErrInvalidRecordSize indicates a record parser was handed a byte slice
	// whose length does not match the layout for the active dialect.
	ErrInvalidRecordSize = errors.New("invalid record payload size")

	// ErrNoInputPath indicates the CLI was invoked without a capture path.
	ErrNoInputPath = errors.New("no input file path given")

	// ErrEmptyCapture indicates a capture file contained no bytes at all.
	ErrEmptyCapture = errors.New("empty capture")
)

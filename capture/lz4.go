package capture

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// decodeLZ4 unwraps an LZ4-framed capture.
func decodeLZ4(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

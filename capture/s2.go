package capture

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
)

// decodeS2 unwraps an S2/Snappy-framed capture.
func decodeS2(data []byte) ([]byte, error) {
	return io.ReadAll(s2.NewReader(bytes.NewReader(data)))
}

package capture

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// decodeGzip unwraps a gzip-framed capture.
func decodeGzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}

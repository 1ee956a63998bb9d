//go:build ttbin_cgo_zstd

package capture

import (
	"github.com/valyala/gozstd"
)

// decodeZstd unwraps a Zstandard-framed capture using the cgo libzstd
// bindings. Selected with the ttbin_cgo_zstd build tag for environments
// where the native decoder's speed matters more than a pure-Go build.
func decodeZstd(data []byte) ([]byte, error) {
	return gozstd.Decompress(nil, data)
}

package render

import (
	"fmt"
	"strings"
)

// hexBytesPerLine is the fixed width of diagnostic hex dumps.
const hexBytesPerLine = 32

// HexDump formats raw payload bytes the way the diagnostic output shows every
// unclassified payload: space-separated upper-case byte pairs, 32 bytes per
// line, each line terminated by a newline.
//
// The returned string is freshly built on every call; nothing is shared or
// reused between calls.
func HexDump(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, b := range data {
		fmt.Fprintf(&sb, " %02X", b)
		if i%hexBytesPerLine == hexBytesPerLine-1 {
			sb.WriteByte('\n')
		}
	}
	if len(data)%hexBytesPerLine != 0 {
		sb.WriteByte('\n')
	}

	return sb.String()
}

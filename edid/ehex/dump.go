package ehex

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"edid-forge/ds"
)

// Dump renders bs as lines of 16 space separated lowercase hex bytes, the
// layout Ingest reads back.
func Dump(bs []byte) string {
	lines := lo.Map(
		ds.MakeChunks(bs, BytesPerLine),
		func(chunk []byte, _ int) string {
			tokens := lo.Map(
				chunk,
				func(b byte, _ int) string {
					return fmt.Sprintf("%02x", b)
				},
			)
			return strings.Join(tokens, " ")
		},
	)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

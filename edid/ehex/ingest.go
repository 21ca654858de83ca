package ehex

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"edid-forge/edid/ebytes"
)

// Ingest reads the first record of a hex dump. Tokens are whitespace separated
// two digit hex bytes; other tokens are dropped one by one. Lines may be of
// any length.
func Ingest(r io.Reader) ([]byte, error) {
	bs := make([]byte, 0, ebytes.BlockSize)
	reader := bufio.NewReader(r)
	for done := false; !done; {
		line, err := reader.ReadString('\n')
		switch {
		case errors.Is(err, io.EOF):
			done = true
		case err != nil:
			return nil, errors.Wrap(err, "ehex.Ingest")
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, HeaderPrefix) {
			continue
		}
		cleanLine := strings.TrimSpace(line)
		if strings.HasPrefix(cleanLine, RecordSeparator) {
			break
		}
		if cleanLine == "" {
			continue
		}
		bs = append(bs, ParseLine(cleanLine)...)
	}

	if !ebytes.IsValidSize(len(bs)) {
		return nil, errors.Wrapf(ErrInvalidEdidSize, "%d bytes", len(bs))
	}
	return bs, nil
}

// ParseLine returns the bytes spelled by the two character tokens of line.
func ParseLine(line string) []byte {
	return lo.FilterMap(
		strings.Fields(line),
		func(token string, _ int) (byte, bool) {
			if len(token) != 2 || token == PlaceholderToken {
				return 0, false
			}
			b, err := strconv.ParseUint(token, 16, 8)
			if err != nil {
				return 0, false
			}
			return byte(b), true
		},
	)
}

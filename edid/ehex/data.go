// Package ehex reads and writes EDID images as text hex dumps.
package ehex

import (
	"github.com/pkg/errors"
)

const (
	// HeaderPrefix marks a noise line such as "edid-decode (hex):".
	HeaderPrefix = "edid"
	// RecordSeparator ends the first record of a multi record dump.
	RecordSeparator = "---"
	// PlaceholderToken stands for a missing byte in some dumps.
	PlaceholderToken = "--"
	BytesPerLine     = 16
)

var (
	ErrInvalidEdidSize = errors.New("ehex: incorrect edid size")
)

// Package etiming decodes the standard timing block at 0x26.
package etiming

type (
	Entry struct {
		Index int  `json:"index"`
		X     byte `json:"x"`
		Ratio byte `json:"ratio"`
	}
	AspectRatio struct {
		Numerator   int
		Denominator int
	}
)

const (
	// UnusedMarker in the first byte of an entry means the entry is empty.
	UnusedMarker = 0x01
)

// AspectRatios is indexed by the two low bits of the second entry byte.
var AspectRatios = [4]AspectRatio{
	{16, 16},
	{10, 16},
	{4, 5},
	{9, 16},
}

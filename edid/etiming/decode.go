package etiming

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"edid-forge/ds"
	"edid-forge/edid/ebytes"
)

// Decode returns all eight entries, unused ones included.
func Decode(img *ebytes.Image) ([]Entry, error) {
	raw, err := img.Slice(
		ebytes.OffsetStandardTimings,
		ebytes.NumStandardTimings*ebytes.StandardTimingSize,
	)
	if err != nil {
		return nil, errors.Wrap(err, "etiming.Decode")
	}
	return lo.Map(
		ds.MakeChunks(raw, ebytes.StandardTimingSize),
		func(pair []byte, i int) Entry {
			return Entry{Index: i, X: pair[0], Ratio: pair[1]}
		},
	), nil
}

func (e Entry) IsUnused() bool {
	return e.X == UnusedMarker
}

func (e Entry) HActive() int {
	return int(e.X>>2)*8 + 248
}

// VActive is HActive scaled by the aspect ratio, rounded down.
func (e Entry) VActive() (int, error) {
	index := int(e.Ratio & 0x03)
	if index >= len(AspectRatios) {
		return 0, ds.ErrUnreachableCode{Caller: "etiming.Entry.VActive"}
	}
	ratio := AspectRatios[index]
	return e.HActive() * ratio.Numerator / ratio.Denominator, nil
}

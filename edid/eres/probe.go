package eres

import (
	"fmt"

	"github.com/pkg/errors"

	"edid-forge/edid/ebytes"
	"edid-forge/edid/edesc"
	"edid-forge/edid/eheader"
	"edid-forge/edid/etiming"
)

const (
	offsetRawH = 0x38
	offsetRawV = 0x3A
)

func format(h int, v int) string {
	return fmt.Sprintf("%dx%d", h, v)
}

// ProbeHeader answers InvalidHeader for anything but the magic header.
func ProbeHeader(img *ebytes.Image) (string, bool, error) {
	head, err := img.Slice(ebytes.OffsetMagic, ebytes.MagicSize)
	if err != nil || !eheader.IsValidMagicNumber(head) {
		return InvalidHeader, true, nil
	}
	return "", false, nil
}

// ProbeDetailedTiming answers with the first progressive detailed timing that
// has nonzero active pixels.
func ProbeDetailedTiming(img *ebytes.Image) (string, bool, error) {
	for _, slot := range edesc.Slots(img) {
		if !slot.IsTimingCandidate() {
			continue
		}
		timing := slot.DetailedTiming()
		if timing.Interlaced {
			continue
		}
		if timing.HActive == 0 || timing.VActive == 0 {
			continue
		}
		return format(timing.HActive, timing.VActive), true, nil
	}
	return "", false, nil
}

// ProbeStandardTiming answers with the first used standard timing entry.
func ProbeStandardTiming(img *ebytes.Image) (string, bool, error) {
	entries, err := etiming.Decode(img)
	if err != nil {
		return "", false, err
	}
	for _, entry := range entries {
		if entry.IsUnused() {
			continue
		}
		v, err := entry.VActive()
		if err != nil {
			return "", false, err
		}
		return format(entry.HActive(), v), true, nil
	}
	return "", false, nil
}

// ProbeRawFallback reads the first descriptor's bytes 2..5 as two 16 bit
// numbers. The horizontal value is big endian, the vertical one has its bytes
// swapped.
func ProbeRawFallback(img *ebytes.Image) (string, bool, error) {
	raw, err := img.Slice(offsetRawH, 4)
	if err != nil {
		return "", false, errors.Wrap(err, "ProbeRawFallback")
	}
	h := int(raw[0])<<8 | int(raw[1])
	v := int(raw[offsetRawV-offsetRawH+1])<<8 | int(raw[offsetRawV-offsetRawH])
	return format(h, v), true, nil
}

package edesc

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"edid-forge/ds"
	"edid-forge/edid/ebytes"
)

// SlotOffsets are the start offsets of the descriptor slots, in scan order.
var SlotOffsets = ds.MakeRange(
	ebytes.OffsetDescriptors,
	ebytes.OffsetDescriptorsEnd,
	ebytes.DescriptorSize,
)

// Slots returns the slots that fit inside the image. A truncated image yields
// fewer than four.
func Slots(img *ebytes.Image) []Slot {
	return lo.FilterMap(
		SlotOffsets,
		func(offset int, _ int) (Slot, bool) {
			raw, err := img.Slice(offset, ebytes.DescriptorSize)
			if err != nil {
				return Slot{}, false
			}
			return Slot{Offset: offset, Raw: raw}, true
		},
	)
}

// FindDescriptor returns the offset of the first monitor descriptor slot
// carrying tag.
func FindDescriptor(img *ebytes.Image, tag Tag) (int, error) {
	slot, ok := lo.Find(
		Slots(img),
		func(slot Slot) bool {
			return slot.HasTag(tag)
		},
	)
	if !ok {
		return 0, errors.Wrapf(ErrDescriptorNotFound, "tag 0x%02X", byte(tag))
	}
	return slot.Offset, nil
}

// IsMonitorDescriptor reports whether the slot holds tagged data instead of a
// detailed timing.
func (s Slot) IsMonitorDescriptor() bool {
	return s.Raw[0] == 0 && s.Raw[1] == 0 && s.Raw[2] == 0
}

func (s Slot) Tag() Tag {
	return Tag(s.Raw[3])
}

func (s Slot) HasTag(tag Tag) bool {
	return s.IsMonitorDescriptor() && s.Tag() == tag
}

// Text returns the descriptor text without the space or newline padding.
func (s Slot) Text() string {
	text := s.Raw[ebytes.DescriptorTextOffset : ebytes.DescriptorTextOffset+ebytes.DescriptorTextSize]
	return strings.TrimRight(string(text), " \n\x00")
}

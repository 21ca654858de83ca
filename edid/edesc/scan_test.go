package edesc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edid-forge/edid/ebytes"
	"edid-forge/edid/efixture"
)

func TestSlotOffsets(t *testing.T) {
	assert.Equal(t, []int{0x36, 0x48, 0x5A, 0x6C}, SlotOffsets)
}

func TestFindDescriptor(t *testing.T) {
	bs := efixture.Base()
	efixture.PutDetailedTiming(bs, 0x36, 1920, 1080, false)
	efixture.PutMonitorDescriptor(bs, 0x5A, 0xFC, "MONITOR")

	offset, err := FindDescriptor(ebytes.NewImage(bs), TagProductName)
	require.NoError(t, err)
	assert.Equal(t, 0x5A, offset)
}

func TestFindDescriptor_LowestOffsetWins(t *testing.T) {
	bs := efixture.Base()
	efixture.PutMonitorDescriptor(bs, 0x48, 0xFF, "FIRST")
	efixture.PutMonitorDescriptor(bs, 0x6C, 0xFF, "SECOND")

	offset, err := FindDescriptor(ebytes.NewImage(bs), TagSerialNumber)
	require.NoError(t, err)
	assert.Equal(t, 0x48, offset)
}

func TestFindDescriptor_NotFound(t *testing.T) {
	_, err := FindDescriptor(ebytes.NewImage(efixture.Base()), TagSerialNumber)
	assert.True(t, errors.Is(err, ErrDescriptorNotFound))
}

func TestFindDescriptor_TagRequiresZeroPrefix(t *testing.T) {
	bs := efixture.Base()
	efixture.PutMonitorDescriptor(bs, 0x36, 0xFF, "SERIAL")
	bs[0x36+2] = 0x01

	_, err := FindDescriptor(ebytes.NewImage(bs), TagSerialNumber)
	assert.True(t, errors.Is(err, ErrDescriptorNotFound))
}

func TestFindDescriptor_TruncatedImage(t *testing.T) {
	bs := efixture.Base()
	efixture.PutMonitorDescriptor(bs, 0x48, 0xFF, "SERIAL")
	efixture.PutMonitorDescriptor(bs, 0x6C, 0xFC, "NAME")

	// cuts the last slot in half
	img := ebytes.NewImage(bs[:0x6C+9])
	assert.Len(t, Slots(img), 3)

	offset, err := FindDescriptor(img, TagSerialNumber)
	require.NoError(t, err)
	assert.Equal(t, 0x48, offset)

	_, err = FindDescriptor(img, TagProductName)
	assert.True(t, errors.Is(err, ErrDescriptorNotFound))

	_, err = FindDescriptor(ebytes.NewImage(bs[:0x30]), TagSerialNumber)
	assert.True(t, errors.Is(err, ErrDescriptorNotFound))
}

func TestSlot_Text(t *testing.T) {
	bs := efixture.Base()
	efixture.PutMonitorDescriptor(bs, 0x36, 0xFC, "DELL U2720Q")
	bs[0x36+5+11] = '\n'

	slots := Slots(ebytes.NewImage(bs))
	require.Len(t, slots, 4)
	assert.True(t, slots[0].HasTag(TagProductName))
	assert.Equal(t, "DELL U2720Q", slots[0].Text())
}

func TestSlot_DetailedTiming(t *testing.T) {
	bs := efixture.Base()
	efixture.PutDetailedTiming(bs, 0x48, 3840, 2160, true)

	slot := Slots(ebytes.NewImage(bs))[1]
	assert.True(t, slot.IsTimingCandidate())
	assert.False(t, slot.IsMonitorDescriptor())
	assert.Equal(
		t,
		DetailedTiming{HActive: 3840, VActive: 2160, Interlaced: true},
		slot.DetailedTiming(),
	)
}

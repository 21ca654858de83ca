package eheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edid-forge/edid/ebytes"
)

func TestIsValidMagicNumber(t *testing.T) {
	assert.True(t, IsValidMagicNumber(MagicNumberBytes))
	assert.True(t, IsValidMagicNumber(append(append([]byte{}, MagicNumberBytes...), 0x10)))
	assert.False(t, IsValidMagicNumber([]byte{0x00, 0xFF}))
	assert.False(t, IsValidMagicNumber([]byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}))
}

func TestManufacturerID(t *testing.T) {
	// "DEL" = 4, 5, 12 -> 0b0_00100_00101_01100
	assert.Equal(t, "DEL", ManufacturerID([]byte{0x10, 0xAC}))
	assert.Equal(t, "", ManufacturerID([]byte{0x10}))
}

func TestDecode(t *testing.T) {
	bs := make([]byte, ebytes.BlockSize)
	copy(bs, MagicNumberBytes)
	copy(bs[ebytes.OffsetManufacturer:], []byte{0x10, 0xAC, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 12, 30, 1, 4})

	header, err := Decode(ebytes.NewImage(bs))
	require.NoError(t, err)

	assert.Equal(t, "DEL", ManufacturerID(header.Manufacturer))
	assert.Equal(t, uint16(0x1234), header.ProductCode)
	assert.Equal(t, uint32(0x12345678), header.SerialNumber)
	assert.Equal(t, uint8(12), header.Week)
	assert.Equal(t, 2020, header.CalendarYear())
	assert.Equal(t, uint8(1), header.Version)
	assert.Equal(t, uint8(4), header.Revision)
}

func TestDecode_InvalidMagic(t *testing.T) {
	_, err := Decode(ebytes.NewImage(make([]byte, ebytes.BlockSize)))
	assert.Error(t, err)

	_, err = Decode(ebytes.NewImage(MagicNumberBytes[:4]))
	assert.Error(t, err)
}

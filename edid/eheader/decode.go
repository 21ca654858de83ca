package eheader

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"edid-forge/edid/ebytes"
)

// IsValidMagicNumber reports whether bs starts with the fixed 8 byte EDID header.
func IsValidMagicNumber(bs []byte) bool {
	return len(bs) >= ebytes.MagicSize &&
		bytes.Equal(bs[:ebytes.MagicSize], MagicNumberBytes)
}

// ManufacturerID unpacks the three 5-bit letters stored big-endian at 0x08.
func ManufacturerID(raw []byte) string {
	if len(raw) < 2 {
		return ""
	}
	code := uint16(raw[0])<<8 | uint16(raw[1])
	letter := func(c uint16) byte {
		// "A" is stored as 1
		return byte('A' - 1 + c&0x1F)
	}
	return string([]byte{letter(code >> 10), letter(code >> 5), letter(code)})
}

// CalendarYear is the stored year byte added to the 1990 base.
func (h Header) CalendarYear() int {
	return ebytes.YearBase + int(h.Year)
}

func createMagicNumberReadFunction(reader *ebytes.Reader) ebytes.ReadFunction {
	return func() (any, error) {
		magicNumberBytes, err := reader.ReadBytes(ebytes.MagicSize)
		if err != nil {
			return nil, err
		}
		if !IsValidMagicNumber(magicNumberBytes) {
			msg := fmt.Sprintf(
				`invalid magic number: expected "% X", got "% X"`,
				MagicNumberBytes, magicNumberBytes,
			)
			return nil, errors.New(msg)
		}
		return magicNumberBytes, nil
	}
}

// Decode reads the vendor and product section of the base block (0x00..0x13).
func Decode(img *ebytes.Image) (*Header, error) {
	reader := ebytes.NewImageReader(img)

	headerInstructions := []ebytes.Instruction{
		{Key: "magic_number", ReadFunction: createMagicNumberReadFunction(reader)},
		{Key: "manufacturer", ReadFunction: ebytes.CreateNBytesReadFunction(reader, 2)},
		{Key: "product_code", ReadFunction: ebytes.CreateUint16ReadFunction(reader)},
		{Key: "serial_number", ReadFunction: ebytes.CreateUint32ReadFunction(reader)},
		{Key: "week", ReadFunction: ebytes.CreateUint8ReadFunction(reader)},
		{Key: "year", ReadFunction: ebytes.CreateUint8ReadFunction(reader)},
		{Key: "version", ReadFunction: ebytes.CreateUint8ReadFunction(reader)},
		{Key: "revision", ReadFunction: ebytes.CreateUint8ReadFunction(reader)},
	}

	header, err := ebytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "eheader.Decode")
	}

	return header, nil
}

package efield

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"edid-forge/edid/ebytes"
)

// SetSerial writes the 4 bytes spelled by hex8 to 0x0C..0x0F, in text order.
func SetSerial(img *ebytes.Image, hex8 string) error {
	if len(hex8) != SerialHexLength {
		return errors.Wrapf(ErrInvalidSerialFormat, "got %d symbols", len(hex8))
	}
	serial, err := hex.DecodeString(hex8)
	if err != nil {
		return errors.Wrapf(ErrInvalidSerialFormat, "%q: %v", hex8, err)
	}
	if err := img.Put(ebytes.OffsetSerial, serial); err != nil {
		return errors.Wrap(err, "SetSerial")
	}
	return nil
}

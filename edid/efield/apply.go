package efield

import (
	"github.com/pkg/errors"

	"edid-forge/edid/ebytes"
	"edid-forge/edid/edesc"
)

// Apply runs the edits in their fixed order (serial, date, serial text,
// product name) and finishes with the checksum. The first failure stops the
// sequence; edits made before it stay in the image.
func Apply(img *ebytes.Image, edits Edits) error {
	if edits.Serial != "" {
		if err := SetSerial(img, edits.Serial); err != nil {
			return err
		}
	}
	if edits.Date != nil {
		if err := SetManufactureDate(img, edits.Date.Week, edits.Date.Year); err != nil {
			return err
		}
	}
	if edits.SerialText != "" {
		if err := SetDescriptorText(img, edesc.TagSerialNumber, edits.SerialText); err != nil {
			return errors.Wrap(err, "serial number descriptor")
		}
	}
	if edits.ProductName != "" {
		if err := SetDescriptorText(img, edesc.TagProductName, edits.ProductName); err != nil {
			return errors.Wrap(err, "product name descriptor")
		}
	}
	return UpdateChecksum(img)
}

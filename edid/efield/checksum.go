package efield

import (
	"github.com/pkg/errors"

	"edid-forge/edid/ebytes"
)

// UpdateChecksum makes the 128 base block bytes sum to 0 mod 256. It must run
// after every other edit.
func UpdateChecksum(img *ebytes.Image) error {
	sum, err := img.Sum(0, ebytes.OffsetChecksum)
	if err != nil {
		return errors.Wrap(err, "UpdateChecksum")
	}
	if err := img.SetByte(ebytes.OffsetChecksum, -sum); err != nil {
		return errors.Wrap(err, "UpdateChecksum")
	}
	return nil
}

func ChecksumValid(img *ebytes.Image) bool {
	sum, err := img.Sum(0, ebytes.BlockSize)
	return err == nil && sum == 0
}

package efield

import (
	"math"

	"github.com/pkg/errors"

	"edid-forge/edid/ebytes"
)

func SetManufactureDate(img *ebytes.Image, week int, year int) error {
	if week < MinWeek || week > MaxWeek {
		return errors.Wrapf(ErrOutOfRange, "week must be in [%d-%d], got %d", MinWeek, MaxWeek, week)
	}
	if year < MinYear || year > MaxYear {
		return errors.Wrapf(ErrOutOfRange, "year must be in [%d-%d], got %d", MinYear, MaxYear, year)
	}
	if year-ebytes.YearBase > math.MaxUint8 {
		return errors.Wrapf(ErrOutOfRange, "year %d does not fit one byte above %d", year, ebytes.YearBase)
	}
	if err := img.Put(ebytes.OffsetWeek, []byte{byte(week), byte(year - ebytes.YearBase)}); err != nil {
		return errors.Wrap(err, "SetManufactureDate")
	}
	return nil
}

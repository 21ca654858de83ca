// Package efield edits fields of an EDID image in place.
package efield

import (
	"github.com/pkg/errors"

	"edid-forge/edid/ebytes"
)

type (
	// Edits lists the changes Apply makes. Empty strings and a nil Date are
	// skipped.
	Edits struct {
		Serial      string `json:"serial,omitempty"`
		Date        *Date  `json:"date,omitempty"`
		SerialText  string `json:"serial_text,omitempty"`
		ProductName string `json:"product_name,omitempty"`
	}
	Date struct {
		Week int `json:"week"`
		Year int `json:"year"`
	}
)

const (
	SerialHexLength = 2 * ebytes.SerialSize
	MinWeek         = 1
	MaxWeek         = 53
	MinYear         = 1990
	// Years past 2245 also fail: year-1990 must fit one byte.
	MaxYear = 2249
)

var (
	ErrInvalidSerialFormat = errors.New("efield: serial must be 8 hex symbols")
	ErrOutOfRange          = errors.New("efield: value out of range")
)

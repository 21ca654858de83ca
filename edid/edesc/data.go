// Package edesc reads the four 18 byte descriptor slots of the base block.
package edesc

import (
	"github.com/pkg/errors"
)

type (
	Tag byte

	// Slot is a view over one descriptor window of an image.
	Slot struct {
		Offset int    `json:"offset"`
		Raw    []byte `json:"raw"`
	}

	DetailedTiming struct {
		HActive    int  `json:"h_active"`
		VActive    int  `json:"v_active"`
		Interlaced bool `json:"interlaced"`
	}
)

const (
	TagSerialNumber = Tag(0xFF)
	TagProductName  = Tag(0xFC)
)

var (
	ErrDescriptorNotFound = errors.New("edesc: descriptor not found")
)

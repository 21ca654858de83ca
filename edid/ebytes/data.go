package ebytes

import (
	"bytes"

	"github.com/pkg/errors"
)

type (
	// Image is one EDID image: the 128 byte base block plus any extension
	// blocks, kept as opaque trailing bytes.
	Image struct {
		bs []byte
	}
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

// Offsets inside the base block.
const (
	OffsetMagic           = 0x00
	OffsetManufacturer    = 0x08
	OffsetProductCode     = 0x0A
	OffsetSerial          = 0x0C
	OffsetWeek            = 0x10
	OffsetYear            = 0x11
	OffsetVersion         = 0x12
	OffsetRevision        = 0x13
	OffsetStandardTimings = 0x26
	OffsetDescriptors     = 0x36
	OffsetExtensionCount  = 0x7E
	OffsetChecksum        = 0x7F
	OffsetDescriptorsEnd  = OffsetDescriptors + NumDescriptors*DescriptorSize
)

const (
	BlockSize          = 128
	MagicSize          = 8
	SerialSize         = 4
	DescriptorSize     = 18
	NumDescriptors     = 4
	StandardTimingSize = 2
	NumStandardTimings = 8
	// DescriptorTextOffset is relative to the start of a descriptor slot.
	DescriptorTextOffset = 5
	DescriptorTextSize   = 13
	YearBase             = 1990
)

var (
	ErrOutOfBounds = errors.New("ebytes: out of bounds")

	// ValidSizes lists the byte counts a complete image may have: the base
	// block and 1..5 or 7 extension blocks.
	ValidSizes = []int{128, 256, 384, 512, 640, 768, 1024}
)

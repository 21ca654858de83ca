// Package efixture builds EDID images for tests.
package efixture

import (
	"edid-forge/edid/ebytes"
)

var magic = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// Base returns a 128 byte image with a valid header, unused standard timings,
// four dummy descriptors (tag 0x10) and a correct checksum.
func Base() []byte {
	bs := make([]byte, ebytes.BlockSize)
	copy(bs, magic)
	// DEL, product 0x1234
	copy(bs[ebytes.OffsetManufacturer:], []byte{0x10, 0xAC, 0x34, 0x12})
	bs[ebytes.OffsetVersion] = 1
	bs[ebytes.OffsetRevision] = 4
	for i := 0; i < ebytes.NumStandardTimings; i++ {
		offset := ebytes.OffsetStandardTimings + i*ebytes.StandardTimingSize
		bs[offset] = 0x01
		bs[offset+1] = 0x01
	}
	for i := 0; i < ebytes.NumDescriptors; i++ {
		PutMonitorDescriptor(bs, SlotOffset(i), 0x10, "")
	}
	Seal(bs)
	return bs
}

func SlotOffset(i int) int {
	return ebytes.OffsetDescriptors + i*ebytes.DescriptorSize
}

// PutDetailedTiming writes a timing with a nonzero pixel clock and the given
// active pixel counts at offset.
func PutDetailedTiming(bs []byte, offset int, h int, v int, interlaced bool) {
	slot := bs[offset : offset+ebytes.DescriptorSize]
	for i := range slot {
		slot[i] = 0
	}
	// 148.5 MHz
	slot[0] = 0x02
	slot[1] = 0x3A
	slot[2] = byte(h)
	slot[4] = byte(h>>8) << 4
	slot[5] = byte(v)
	slot[7] = byte(v>>8) << 4
	if interlaced {
		slot[17] = 0x80
	}
}

func PutMonitorDescriptor(bs []byte, offset int, tag byte, text string) {
	slot := bs[offset : offset+ebytes.DescriptorSize]
	for i := range slot {
		slot[i] = 0
	}
	slot[3] = tag
	textBytes := []byte(text)
	for i := 0; i < ebytes.DescriptorTextSize; i++ {
		if i < len(textBytes) {
			slot[ebytes.DescriptorTextOffset+i] = textBytes[i]
		} else {
			slot[ebytes.DescriptorTextOffset+i] = ' '
		}
	}
}

func PutStandardTiming(bs []byte, index int, b0 byte, b1 byte) {
	offset := ebytes.OffsetStandardTimings + index*ebytes.StandardTimingSize
	bs[offset] = b0
	bs[offset+1] = b1
}

// Seal recomputes the base block checksum.
func Seal(bs []byte) {
	sum := byte(0)
	for _, b := range bs[:ebytes.OffsetChecksum] {
		sum += b
	}
	bs[ebytes.OffsetChecksum] = -sum
}

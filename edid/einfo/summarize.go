// Package einfo builds a human readable report of an EDID image.
package einfo

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"

	"edid-forge/edid/ebytes"
	"edid-forge/edid/edesc"
	"edid-forge/edid/efield"
	"edid-forge/edid/eheader"
	"edid-forge/edid/eres"
	"edid-forge/edid/etiming"
)

// Summarize reports the fields the editor and converter care about. Keys keep
// a fixed order so that reports diff well.
func Summarize(img *ebytes.Image) *orderedmap.OrderedMap {
	report := orderedmap.New()
	report.Set("size", img.Len())

	header, err := eheader.Decode(img)
	report.Set("header_valid", err == nil)
	if err == nil {
		report.Set("manufacturer", eheader.ManufacturerID(header.Manufacturer))
		report.Set("product_code", fmt.Sprintf("0x%04X", header.ProductCode))
		report.Set("serial_number", fmt.Sprintf("0x%08X", header.SerialNumber))
		// same text edit --serial takes
		if serial, err := img.Slice(ebytes.OffsetSerial, ebytes.SerialSize); err == nil {
			report.Set("serial_bytes", fmt.Sprintf("%X", serial))
		}
		report.Set("week", header.Week)
		report.Set("year", header.CalendarYear())
		report.Set("version", fmt.Sprintf("%d.%d", header.Version, header.Revision))
	}

	report.Set("descriptors", lo.Map(edesc.Slots(img), summarizeSlot))

	if entries, err := etiming.Decode(img); err == nil {
		report.Set("standard_timings", summarizeStandardTimings(entries))
	}

	report.Set("resolution", eres.Infer(img, eres.Probes...))
	if extensions, err := img.Byte(ebytes.OffsetExtensionCount); err == nil {
		report.Set("extensions", extensions)
	}
	report.Set("checksum_valid", efield.ChecksumValid(img))
	return report
}

func summarizeSlot(slot edesc.Slot, _ int) *orderedmap.OrderedMap {
	summary := orderedmap.New()
	summary.Set("offset", fmt.Sprintf("0x%02X", slot.Offset))
	if !slot.IsTimingCandidate() {
		summary.Set("tag", fmt.Sprintf("0x%02X", byte(slot.Tag())))
		if slot.IsMonitorDescriptor() &&
			(slot.Tag() == edesc.TagSerialNumber || slot.Tag() == edesc.TagProductName) {
			summary.Set("text", slot.Text())
		}
		return summary
	}
	timing := slot.DetailedTiming()
	summary.Set("detailed_timing", fmt.Sprintf("%dx%d", timing.HActive, timing.VActive))
	summary.Set("interlaced", timing.Interlaced)
	return summary
}

func summarizeStandardTimings(entries []etiming.Entry) []string {
	return lo.FilterMap(
		entries,
		func(entry etiming.Entry, _ int) (string, bool) {
			if entry.IsUnused() {
				return "", false
			}
			v, err := entry.VActive()
			if err != nil {
				return "", false
			}
			return fmt.Sprintf("%dx%d", entry.HActive(), v), true
		},
	)
}

// Package edid stores the per-file pipelines that edit, convert and inspect
// EDID images.
package edid

import (
	"edid-forge/ds"
	"edid-forge/edid/eheader"
)

type (
	// Report summarizes one ConvertDirectory run.
	Report struct {
		Processed int `json:"processed"`
		// Failed lists input paths relative to the input directory.
		Failed []string `json:"failed"`
		// Resolutions maps each resolution to its files, in discovery order.
		Resolutions *ds.LinkedHashMap[string, []string] `json:"resolutions"`
	}
)

const (
	OutputExtension = ".bin"
	DirPerm         = 0755
	FilePerm        = 0644
)

// IsEDID reports whether bs starts with the EDID magic header.
func IsEDID(bs []byte) bool {
	return eheader.IsValidMagicNumber(bs)
}

func NewReport() *Report {
	return &Report{
		Failed:      []string{},
		Resolutions: ds.NewLinkedHashMap[string, []string](),
	}
}

// Package eres infers the native resolution of an EDID image.
package eres

import (
	"edid-forge/edid/ebytes"
)

// Probe returns the resolution found by one inference tier. ok is false when
// the tier has nothing to say and the next one should run.
type Probe func(img *ebytes.Image) (resolution string, ok bool, err error)

const (
	// InvalidHeader is returned for images without the EDID magic header.
	InvalidHeader = "invalid_header"
	// Unknown is returned when a probe fails.
	Unknown = "unknown"
)

// Probes run in order, the first present result wins. ProbeRawFallback always
// answers.
var Probes = []Probe{
	ProbeHeader,
	ProbeDetailedTiming,
	ProbeStandardTiming,
	ProbeRawFallback,
}

package eres

import (
	"edid-forge/edid/ebytes"
	"edid-forge/logger"
)

// InferResolution classifies bs as "WxH", InvalidHeader or Unknown. It never
// fails.
func InferResolution(bs []byte) string {
	return Infer(ebytes.NewImage(bs), Probes...)
}

func Infer(img *ebytes.Image, probes ...Probe) string {
	for _, probe := range probes {
		resolution, ok, err := probe(img)
		if err != nil {
			logger.L.Warn("resolution detection error", "error", err)
			return Unknown
		}
		if ok {
			return resolution
		}
	}
	return Unknown
}

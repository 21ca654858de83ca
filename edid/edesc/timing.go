package edesc

// DetailedTiming decodes the active pixel counts of a non-tagged slot.
func (s Slot) DetailedTiming() DetailedTiming {
	raw := s.Raw
	return DetailedTiming{
		HActive:    int(raw[2]) | int(raw[4]&0xF0)<<4,
		VActive:    int(raw[5]) | int(raw[7]&0xF0)<<4,
		Interlaced: raw[17]&0x80 == 0x80,
	}
}

// IsTimingCandidate reports whether the slot may hold a detailed timing. Only
// the first two bytes are checked, a zero pixel clock marks a monitor
// descriptor.
func (s Slot) IsTimingCandidate() bool {
	return !(s.Raw[0] == 0 && s.Raw[1] == 0)
}

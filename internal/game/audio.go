package game

// Audio receives sound cues. Rates are playback-speed multipliers.
type Audio interface {
	// Bell plays the collectible chime.
	Bell(rate, gain float64)
	// Wind plays the ambient gust some levels open with.
	Wind(rate, gain float64)
	// Roll updates the looping ball roll sound. Called every frame.
	Roll(gain, rate float64)
}

// NopAudio discards all cues.
type NopAudio struct{}

func (NopAudio) Bell(rate, gain float64) {}
func (NopAudio) Wind(rate, gain float64) {}
func (NopAudio) Roll(gain, rate float64) {}

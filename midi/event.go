package midi

// MIDI message types
const (
	NoteOn    uint8 = 0x90
	NoteOff   uint8 = 0x80
	PitchBend uint8 = 0xE0
)

// Event is one channel message derived from a pitch
type Event struct {
	Type      uint8 // NoteOn, NoteOff, PitchBend
	Channel   uint8 // 0-15
	Note      uint8
	Velocity  uint8
	BendValue int16 // PitchBend only, -8192..8191
}

// Output settings for turning pitches into events
type Output struct {
	Channel   uint8
	Velocity  uint8
	BendRange float64 // semitones covered by a full bend
}

// DefaultOutput is channel 1, velocity 100, ±2 semitone bend range.
func DefaultOutput() Output {
	return Output{Channel: 0, Velocity: 100, BendRange: 2}
}

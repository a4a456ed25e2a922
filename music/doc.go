// Package music models Western pitch as values: letters, accidentals,
// intervals, tuning adjustments, spelled tones and the frequencies they
// denote. Every type is an immutable value; operations return new values.
//
// Tones transpose by intervals with automatic enharmonic spelling:
//
//	c4 := music.MustTone(music.C, music.Natural, 4)
//	e4, _ := c4.Transpose(music.MajorThird, music.Up)      // E4
//	b3, _ := c4.Transpose(music.MinorSecond, music.Down)   // B3
//
// Pitches add a cent or herz adjustment and expose the frequency:
//
//	p := music.MustPitch(music.BaseTone, music.Cents(1200))
//	p.Frequency() // 880
package music

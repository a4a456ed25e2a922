package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-tonal/compose"
	"go-tonal/debug"
	"go-tonal/music"
)

// PitchEvents returns the note-on for a pitch, preceded by a pitch bend when
// the pitch is detuned from its key.
func (o Output) PitchEvents(p music.Pitch) ([]Event, error) {
	key, err := Key(p.Tone())
	if err != nil {
		return nil, err
	}

	var events []Event
	if bend := Bend(p, o.BendRange); bend != 0 {
		events = append(events, Event{Type: PitchBend, Channel: o.Channel, BendValue: bend})
	}
	events = append(events, Event{Type: NoteOn, Channel: o.Channel, Note: key.Value(), Velocity: o.Velocity})

	debug.Log("midi", "pitch=%s key=%d events=%d", p.Code(true), key.Value(), len(events))
	return events, nil
}

// ReleaseEvents returns the note-offs matching PitchEvents for the same pitches.
func (o Output) ReleaseEvents(pitches ...music.Pitch) ([]Event, error) {
	events := make([]Event, 0, len(pitches))
	for _, p := range pitches {
		key, err := Key(p.Tone())
		if err != nil {
			return nil, err
		}
		events = append(events, Event{Type: NoteOff, Channel: o.Channel, Note: key.Value()})
	}
	return events, nil
}

// ConcordEvents sounds every pitch of the concord, lowest first. A single
// channel carries one bend, so only the first detuned pitch's bend is kept.
func (o Output) ConcordEvents(c compose.Concord) ([]Event, error) {
	var events []Event
	bent := false
	for i, p := range c.Pitches() {
		pe, err := o.PitchEvents(p)
		if err != nil {
			return nil, fmt.Errorf("concord pitch %d: %w", i, err)
		}
		for _, e := range pe {
			if e.Type == PitchBend {
				if bent {
					continue
				}
				bent = true
			}
			events = append(events, e)
		}
	}
	return events, nil
}

// Messages encodes events as raw MIDI messages.
func Messages(events []Event) []gomidi.Message {
	msgs := make([]gomidi.Message, 0, len(events))
	for _, e := range events {
		switch e.Type {
		case NoteOn:
			msgs = append(msgs, gomidi.NoteOn(e.Channel, e.Note, e.Velocity))
		case NoteOff:
			msgs = append(msgs, gomidi.NoteOff(e.Channel, e.Note))
		case PitchBend:
			msgs = append(msgs, gomidi.Pitchbend(e.Channel, e.BendValue))
		}
	}
	return msgs
}

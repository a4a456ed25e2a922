package compose

import "go-tonal/music"

// Note is a pitch held for a duration. Pitch operations pass through.
type Note struct {
	Pitch    music.Pitch
	Duration Duration
}

func NewNote(pitch music.Pitch, duration Duration) Note {
	return Note{Pitch: pitch, Duration: duration}
}

func (n Note) Transpose(interval music.Interval, direction music.Direction) (Note, error) {
	p, err := n.Pitch.Transpose(interval, direction)
	if err != nil {
		return Note{}, err
	}
	return Note{Pitch: p, Duration: n.Duration}, nil
}

func (n Note) Adjust(adjustment music.Adjustment) (Note, error) {
	p, err := n.Pitch.Adjust(adjustment)
	if err != nil {
		return Note{}, err
	}
	return Note{Pitch: p, Duration: n.Duration}, nil
}

func (n Note) Unadjusted() Note {
	return Note{Pitch: n.Pitch.Unadjusted(), Duration: n.Duration}
}

// Code renders "<pitch>:<duration>", e.g. "C#4:1/8".
func (n Note) Code(concise bool) string {
	return n.Pitch.Code(concise) + ":" + n.Duration.Code()
}

func (n Note) String() string {
	return n.Code(true)
}

var (
	_ music.Transposable[Note] = Note{}
	_ music.Adjustable[Note]   = Note{}
	_ music.Encodable          = Note{}
)

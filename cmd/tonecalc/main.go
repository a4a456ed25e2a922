package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go-tonal/compose"
	"go-tonal/config"
	"go-tonal/midi"
	"go-tonal/music"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "tone":
		err = toneCmd(os.Args[2:])
	case "transpose":
		err = transposeCmd(os.Args[2:])
	case "freq":
		err = freqCmd(os.Args[2:])
	case "scale":
		err = scaleCmd(os.Args[2:])
	case "chord":
		err = chordCmd(os.Args[2:])
	case "midi":
		err = midiCmd(os.Args[2:])
	default:
		usage()
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("tonecalc - pitch arithmetic")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  tone       -letter C -alt 1 -octave 4      print tone code and value")
	fmt.Println("  transpose  ... -origin 4 -aug 0 -oct 0 -down")
	fmt.Println("  freq       ... -cents 50 | -herz 10        print frequency")
	fmt.Println("  scale      ... -key major|minor -degree 5")
	fmt.Println("  chord      ... -origins 4,7 -midi          stack intervals on the tone")
	fmt.Println("  midi       ... -cents 25                   MIDI key, bend and messages")
}

// toneFlags are shared by every subcommand
type toneFlags struct {
	letter  string
	alt     int
	octave  int
	verbose bool
}

func addToneFlags(fs *flag.FlagSet) *toneFlags {
	tf := &toneFlags{}
	fs.StringVar(&tf.letter, "letter", "C", "letter C..B")
	fs.IntVar(&tf.alt, "alt", 0, "alteration in semitones (sharps > 0, flats < 0)")
	fs.IntVar(&tf.octave, "octave", music.OctaveOneLine, "octave, 4 holds middle C")
	fs.BoolVar(&tf.verbose, "v", false, "verbose codes (show naturals and zero adjustments)")
	return tf
}

func (tf *toneFlags) tone() (music.Tone, error) {
	cfg := config.DefaultConfig()
	cfg.Explorer.Letter = strings.ToUpper(tf.letter)
	cfg.Explorer.Alteration = tf.alt
	cfg.Explorer.Octave = tf.octave
	return cfg.StartTone()
}

func adjustmentFlags(fs *flag.FlagSet) (cents, herz *float64) {
	cents = fs.Float64("cents", 0, "adjustment in cents")
	herz = fs.Float64("herz", 0, "adjustment in Hz")
	return cents, herz
}

func adjustment(cents, herz float64) (music.Adjustment, error) {
	switch {
	case cents != 0 && herz != 0:
		return music.Adjustment{}, errors.New("use -cents or -herz, not both")
	case cents != 0:
		return music.Cents(cents), nil
	case herz != 0:
		return music.Herz(herz), nil
	}
	return music.ZeroAdjustment, nil
}

func toneCmd(args []string) error {
	fs := flag.NewFlagSet("tone", flag.ExitOnError)
	tf := addToneFlags(fs)
	fs.Parse(args)

	t, err := tf.tone()
	if err != nil {
		return err
	}
	fmt.Printf("%s  value=%d  distance from A4=%+d\n", t.Code(!tf.verbose), t.Value(), t.Distance(music.BaseTone))
	return nil
}

func transposeCmd(args []string) error {
	fs := flag.NewFlagSet("transpose", flag.ExitOnError)
	tf := addToneFlags(fs)
	origin := fs.Int("origin", int(music.OriginMajorSecond), "interval origin in semitones (0-11, not 6)")
	aug := fs.Int("aug", 0, "augmentation in semitones")
	oct := fs.Int("oct", 0, "extra octaves")
	down := fs.Bool("down", false, "transpose downwards")
	fs.Parse(args)

	t, err := tf.tone()
	if err != nil {
		return err
	}
	interval, err := music.NewInterval(music.Origin(*origin), *aug, *oct, music.ZeroAdjustment)
	if err != nil {
		return err
	}
	direction := music.Up
	if *down {
		direction = music.Down
	}

	next, err := t.Transpose(interval, direction)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s %s (%s %s) = %s\n", t.Code(!tf.verbose), direction, interval.Code(true),
		interval.Quality(), interval.Kind(), next.Code(!tf.verbose))
	return nil
}

func freqCmd(args []string) error {
	fs := flag.NewFlagSet("freq", flag.ExitOnError)
	tf := addToneFlags(fs)
	cents, herz := adjustmentFlags(fs)
	fs.Parse(args)

	t, err := tf.tone()
	if err != nil {
		return err
	}
	adj, err := adjustment(*cents, *herz)
	if err != nil {
		return err
	}
	p, err := music.NewPitch(t, adj)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %.4f Hz\n", p.Code(!tf.verbose), p.Frequency())
	return nil
}

func scaleCmd(args []string) error {
	fs := flag.NewFlagSet("scale", flag.ExitOnError)
	tf := addToneFlags(fs)
	key := fs.String("key", string(compose.Major), "major or minor")
	degree := fs.Int("degree", 0, "resolve a scale degree (1-7) instead of listing the scale")
	degreeAlt := fs.Int("degree-alt", 0, "alteration applied to -degree")
	degreeOct := fs.Int("degree-oct", 0, "octaves above (or below) the tonic's octave")
	fs.Parse(args)

	t, err := tf.tone()
	if err != nil {
		return err
	}
	tonality, err := compose.NewTonality(t, compose.Key(strings.ToLower(*key)))
	if err != nil {
		return err
	}
	if *degree == 0 {
		fmt.Println(tonality.Code(!tf.verbose))
		return nil
	}

	step, err := compose.NewStep(compose.Degree(*degree-1), music.Alteration(*degreeAlt), *degreeOct)
	if err != nil {
		return err
	}
	resolved, err := tonality.Resolve(step)
	if err != nil {
		return err
	}
	fmt.Printf("%s of %s %s = %s\n", step.Degree, t.Code(true), tonality.Key(), resolved.Code(!tf.verbose))
	return nil
}

func chordCmd(args []string) error {
	fs := flag.NewFlagSet("chord", flag.ExitOnError)
	tf := addToneFlags(fs)
	origins := fs.String("origins", "4,7", "comma separated interval origins above the root")
	asMIDI := fs.Bool("midi", false, "print the chord as MIDI messages")
	fs.Parse(args)

	root, err := tf.tone()
	if err != nil {
		return err
	}
	concord, err := stack(root, *origins)
	if err != nil {
		return err
	}
	fmt.Println(concord.Code(compose.CodeOptions{Concise: !tf.verbose, PadWithSpaces: true}))
	if !*asMIDI {
		return nil
	}

	out := config.DefaultConfig().Output()
	events, err := out.ConcordEvents(concord)
	if err != nil {
		return err
	}
	printMessages(events)
	return nil
}

func printMessages(events []midi.Event) {
	for _, msg := range midi.Messages(events) {
		fmt.Printf("% X  %s\n", msg.Bytes(), msg)
	}
}

func stack(root music.Tone, origins string) (compose.Concord, error) {
	pitches := []music.Pitch{music.MustPitch(root, music.ZeroAdjustment)}
	for _, field := range strings.Split(origins, ",") {
		var o int
		if _, err := fmt.Sscanf(strings.TrimSpace(field), "%d", &o); err != nil {
			return compose.Concord{}, fmt.Errorf("origin %q: %w", field, music.ErrInvalidArgument)
		}
		interval, err := music.NewInterval(music.Origin(o), 0, 0, music.ZeroAdjustment)
		if err != nil {
			return compose.Concord{}, err
		}
		t, err := root.Transpose(interval, music.Up)
		if err != nil {
			return compose.Concord{}, err
		}
		pitches = append(pitches, music.MustPitch(t, music.ZeroAdjustment))
	}
	return compose.NewConcord(compose.Quarter, pitches...), nil
}

func midiCmd(args []string) error {
	fs := flag.NewFlagSet("midi", flag.ExitOnError)
	tf := addToneFlags(fs)
	cents, herz := adjustmentFlags(fs)
	fs.Parse(args)

	t, err := tf.tone()
	if err != nil {
		return err
	}
	adj, err := adjustment(*cents, *herz)
	if err != nil {
		return err
	}
	p, err := music.NewPitch(t, adj)
	if err != nil {
		return err
	}

	out := config.DefaultConfig().Output()
	events, err := out.PitchEvents(p)
	if err != nil {
		return err
	}
	printMessages(events)
	return nil
}

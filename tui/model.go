package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-tonal/compose"
	"go-tonal/config"
	"go-tonal/debug"
	"go-tonal/midi"
	"go-tonal/music"
	"go-tonal/theme"
	"go-tonal/widgets"
)

// Intervals offered by the explorer, smallest first
var Intervals = []music.Interval{
	music.MinorSecond,
	music.MajorSecond,
	music.MinorThird,
	music.MajorThird,
	music.PerfectFourth,
	music.MustInterval(music.OriginPerfectFourth, 1, 0, music.ZeroAdjustment),
	music.PerfectFifth,
	music.MinorSixth,
	music.MajorSixth,
	music.MinorSeventh,
	music.MajorSeventh,
	music.Octave,
}

const keyboardOctaves = 3

type Model struct {
	Theme *theme.Theme

	tone       music.Tone
	adjustment music.Adjustment
	interval   int
	key        compose.Key
	concise    bool
	centStep   float64
	output     midi.Output

	keys     keyMap
	help     help.Model
	status   string
	quitting bool
}

func NewModel(cfg *config.Config, th *theme.Theme) (Model, error) {
	tone, err := cfg.StartTone()
	if err != nil {
		return Model{}, err
	}
	return Model{
		Theme:    th,
		tone:     tone,
		interval: 1,
		key:      cfg.Explorer.Key,
		concise:  cfg.Display.Concise,
		centStep: cfg.Explorer.CentStep,
		output:   cfg.Output(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}, nil
}

func (m Model) Tone() music.Tone             { return m.tone }
func (m Model) Adjustment() music.Adjustment { return m.adjustment }
func (m Model) Interval() music.Interval     { return Intervals[m.interval] }

// Pitch is the current tone with the current adjustment
func (m Model) Pitch() (music.Pitch, error) {
	return music.NewPitch(m.tone, m.adjustment)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.transpose(music.Up)

		case key.Matches(msg, m.keys.Down):
			m.transpose(music.Down)

		case key.Matches(msg, m.keys.Prev):
			if m.interval > 0 {
				m.interval--
			}

		case key.Matches(msg, m.keys.Next):
			if m.interval < len(Intervals)-1 {
				m.interval++
			}

		case key.Matches(msg, m.keys.Sharpen):
			m.tone = m.tone.Alter(music.Sharp)

		case key.Matches(msg, m.keys.Flatten):
			m.tone = m.tone.Alter(music.Flat)

		case key.Matches(msg, m.keys.Natural):
			m.tone = m.tone.Unaltered()

		case key.Matches(msg, m.keys.Raise):
			m.adjust(m.centStep)

		case key.Matches(msg, m.keys.Lower):
			m.adjust(-m.centStep)

		case key.Matches(msg, m.keys.Reset):
			m.adjustment = music.ZeroAdjustment

		case key.Matches(msg, m.keys.Unit):
			m.switchUnit()

		case key.Matches(msg, m.keys.ToggleKey):
			if m.key == compose.Major {
				m.key = compose.Minor
			} else {
				m.key = compose.Major
			}

		case key.Matches(msg, m.keys.Concise):
			m.concise = !m.concise

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		debug.Log("tui", "key=%s tone=%s adj=%s", msg.String(), m.tone.Code(true), m.adjustment.Code())
	}

	return m, nil
}

func (m *Model) transpose(direction music.Direction) {
	next, err := m.tone.Transpose(Intervals[m.interval], direction)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.tone = next
}

func (m *Model) unit() music.Unit {
	if m.adjustment.IsZero() || m.adjustment.Unit() == music.UnitNone {
		return music.UnitCent
	}
	return m.adjustment.Unit()
}

func (m *Model) adjust(amount float64) {
	step, err := music.NewAdjustment(amount, m.unit())
	if err != nil {
		m.status = err.Error()
		return
	}
	sum, err := m.adjustment.Add(step)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.adjustment = sum
}

func (m *Model) switchUnit() {
	if m.adjustment.IsZero() {
		m.status = "no adjustment to convert"
		return
	}
	unit := music.UnitHerz
	if m.adjustment.Unit() == music.UnitHerz {
		unit = music.UnitCent
	}
	adj, err := music.NewAdjustment(m.adjustment.Value(), unit)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.adjustment = adj
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	th := m.Theme
	headerStyle := lipgloss.NewStyle().Foreground(th.Accent()).Bold(true)
	adjustedStyle := lipgloss.NewStyle().Foreground(th.Adjusted())
	warnStyle := lipgloss.NewStyle().Foreground(th.Success())

	interval := m.Interval()
	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(headerStyle.Render(fmt.Sprintf("go-tonal  %s  %s", m.tone.Code(m.concise), m.key)))
	out.WriteString("\n\n")

	out.WriteString(widgets.RenderField(th, "tone", th.Tone(m.tone, m.concise)))
	out.WriteString("\n")

	pitch, err := m.Pitch()
	if err != nil {
		out.WriteString(widgets.RenderField(th, "pitch", warnStyle.Render(err.Error())))
		out.WriteString("\n")
	} else {
		code := pitch.Code(m.concise)
		if !pitch.Adjustment().IsZero() {
			code = adjustedStyle.Render(code)
		}
		out.WriteString(widgets.RenderField(th, "pitch", code))
		out.WriteString("\n")
		out.WriteString(widgets.RenderField(th, "frequency", fmt.Sprintf("%.3f Hz", pitch.Frequency())))
		out.WriteString("\n")
		out.WriteString(widgets.RenderField(th, "midi", m.midiSummary(pitch)))
		out.WriteString("\n")
	}

	out.WriteString(widgets.RenderField(th, "interval",
		fmt.Sprintf("%s  %s %s  %d semitones", interval.Code(true), interval.Quality(), interval.Kind(), interval.Semitones())))
	out.WriteString("\n")

	var scale []music.Tone
	tonality, err := compose.NewTonality(m.tone, m.key)
	if err != nil {
		out.WriteString(widgets.RenderField(th, "scale", warnStyle.Render(err.Error())))
	} else {
		scale = tonality.Tones()
		out.WriteString(widgets.RenderField(th, "scale", widgets.RenderToneRow(th, scale, m.concise)))
	}
	out.WriteString("\n\n")

	from, to := widgets.KeyboardSpan(m.tone, keyboardOctaves)
	out.WriteString(widgets.RenderKeyboard(th, from, to, m.tone, scale))
	out.WriteString("\n")

	if m.status != "" {
		out.WriteString("\n")
		out.WriteString(warnStyle.Render(m.status))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	if m.help.ShowAll {
		out.WriteString(widgets.RenderKeyHelp(m.keys.Sections()))
	} else {
		out.WriteString(m.help.View(m.keys))
	}

	return out.String()
}

func (m Model) midiSummary(p music.Pitch) string {
	k, err := midi.Key(p.Tone())
	if err != nil {
		return "out of range"
	}
	bend := midi.Bend(p, m.output.BendRange)
	if bend == 0 {
		return fmt.Sprintf("key %d", k.Value())
	}
	return fmt.Sprintf("key %d  bend %+d", k.Value(), bend)
}

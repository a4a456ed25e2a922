package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"go-tonal/widgets"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Sharpen   key.Binding
	Flatten   key.Binding
	Natural   key.Binding
	Raise     key.Binding
	Lower     key.Binding
	Reset     key.Binding
	Unit      key.Binding
	ToggleKey key.Binding
	Concise   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func binding(help string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        binding("transpose up", "up", "k"),
		Down:      binding("transpose down", "down", "j"),
		Prev:      binding("prev interval", "left", "h"),
		Next:      binding("next interval", "right", "l"),
		Sharpen:   binding("sharpen", "#", "s"),
		Flatten:   binding("flatten", "b"),
		Natural:   binding("natural", "n"),
		Raise:     binding("tune up", "+", "="),
		Lower:     binding("tune down", "-", "_"),
		Reset:     binding("untune", "0"),
		Unit:      binding("cent/herz", "u"),
		ToggleKey: binding("major/minor", "m"),
		Concise:   binding("concise", "c"),
		Help:      binding("help", "?"),
		Quit:      binding("quit", "q", "ctrl+c"),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Sharpen, k.Flatten, k.Natural},
		{k.Raise, k.Lower, k.Reset, k.Unit},
		{k.ToggleKey, k.Concise, k.Help, k.Quit},
	}
}

var sectionTitles = []string{"Transpose", "Spelling", "Tuning", "View"}

// Sections lays FullHelp out for widgets.RenderKeyHelp, joining every key of
// a binding ("up/k").
func (k keyMap) Sections() []widgets.KeySection {
	groups := k.FullHelp()
	sections := make([]widgets.KeySection, len(groups))
	for i, group := range groups {
		sections[i].Title = sectionTitles[i]
		for _, b := range group {
			sections[i].Keys = append(sections[i].Keys, widgets.KeyBinding{
				Key:  strings.Join(b.Keys(), "/"),
				Desc: b.Help().Desc,
			})
		}
	}
	return sections
}

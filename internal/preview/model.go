package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storefront/internal/button"
)

// Item is one named control in the gallery.
type Item struct {
	Name   string
	Config button.Config
}

// ActivatedMsg reports the outcome of activating the control at Index.
type ActivatedMsg struct {
	Index int
	Fired bool
}

// Model is the bubbletea state of the button gallery.
type Model struct {
	items   []Item
	results []button.Result
	counts  []int
	theme   Theme
	keys    keyMap
	help    help.Model

	cursor   int
	status   string
	quitting bool
}

// NewModel builds every item once; rendering and activation reuse the results.
func NewModel(items []Item) Model {
	m := Model{
		items:   append([]Item(nil), items...),
		results: make([]button.Result, len(items)),
		counts:  make([]int, len(items)),
		theme:   DefaultTheme(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	for i, item := range m.items {
		m.results[i] = button.Build(item.Config)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the index of the selected item.
func (m Model) Cursor() int { return m.cursor }

// Count reports how many activations reached the handler of item i.
func (m Model) Count(i int) int {
	if i < 0 || i >= len(m.counts) {
		return 0
	}
	return m.counts[i]
}

// Status returns the last status line.
func (m Model) Status() string { return m.status }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) activate() (Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	index := m.cursor
	fired := false
	if node, ok := m.results[index].Node(); ok {
		fired = node.Activate()
	}
	return m, func() tea.Msg { return ActivatedMsg{Index: index, Fired: fired} }
}

// Package ui is the terminal front end: it feeds key presses and resizes to
// the browser controller and paints its snapshot.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/zackbart/browse/internal/browser"
	"github.com/zackbart/browse/internal/locale"
)

// Model is the bubbletea model around a browser controller.
type Model struct {
	ctrl *browser.Controller
	keys KeyMap
	help help.Model
	tr   *locale.Translator
	log  logrus.FieldLogger

	width  int
	height int
	err    error
}

// New returns a model driving ctrl.
func New(ctrl *browser.Controller, tr *locale.Translator, log logrus.FieldLogger) Model {
	h := help.New()
	h.ShortSeparator = "  ·  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(clrHintKey).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(clrHintText)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(clrMuted)
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(clrMuted)

	return Model{
		ctrl: ctrl,
		keys: DefaultKeyMap(),
		help: h,
		tr:   tr,
		log:  log,
	}
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(0, msg.Width-1)
		m.ctrl.SetViewportHeight(msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		action := m.keys.Action(msg)
		if action == browser.None {
			return m, nil
		}
		if err := m.ctrl.Handle(action); err != nil {
			m.log.WithError(err).WithField("action", action).Error("browser stopped")
			m.err = err
			return m, tea.Quit
		}
	}
	return m, nil
}

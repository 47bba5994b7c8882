package term

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg tells the program a new frame was flushed.
type FrameMsg struct{}

// Model is an interactive terminal front end: key presses are posted to the
// queue and the view shows the display's last flushed frame.
type Model struct {
	display *Display
	queue   *tinyblue.EventQueue
	keys    KeyMap
	help    help.Model
}

// NewModel creates a Model for display and queue using DefaultKeyMap.
func NewModel(display *Display, queue *tinyblue.EventQueue) Model {
	return Model{
		display: display,
		queue:   queue,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.queue.Post(tinyblue.EventScrollDown)
		case key.Matches(msg, m.keys.Up):
			m.queue.Post(tinyblue.EventScrollUp)
		case key.Matches(msg, m.keys.Select):
			m.queue.Post(tinyblue.EventSelect)
		case key.Matches(msg, m.keys.Back):
			m.queue.Post(tinyblue.EventBack)
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case FrameMsg:
		// View re-reads the frame
	}
	return m, nil
}

func (m Model) View() string {
	return m.display.FrameView() + "\n" + m.help.View(m.keys)
}

// Run shows display in the terminal and feeds key presses to queue until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, display *Display, queue *tinyblue.EventQueue, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(display, queue), opts...)

	display.setNotify(func() { p.Send(FrameMsg{}) })
	defer display.setNotify(nil)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

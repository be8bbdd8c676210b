package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/planner-go/internal/command"
	"github.com/nibzard/planner-go/internal/session"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	input    io.Reader
	output   io.Writer
	renderer *Renderer
}

// WithInput reads key presses from r instead of the terminal.
func WithInput(r io.Reader) TUIOption {
	return func(c *tuiConfig) {
		c.input = r
	}
}

// WithOutput draws to w instead of stdout. A non-terminal writer is allowed.
func WithOutput(w io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.output = w
	}
}

// WithRenderer sets the renderer used for the list and messages.
func WithRenderer(r *Renderer) TUIOption {
	return func(c *tuiConfig) {
		c.renderer = r
	}
}

// RunTUI runs the interactive terminal interface over sess until the user
// quits or ctx is cancelled.
func RunTUI(ctx context.Context, sess *session.Session, opts ...TUIOption) error {
	c := &tuiConfig{}
	for _, opt := range opts {
		opt(c)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.output == nil {
		if !IsTTY(os.Stdout) {
			return fmt.Errorf("tui requires a TTY")
		}
		programOpts = append(programOpts, tea.WithAltScreen())
	} else {
		programOpts = append(programOpts, tea.WithOutput(c.output))
	}
	if c.input != nil {
		programOpts = append(programOpts, tea.WithInput(c.input))
	}

	renderer := c.renderer
	if renderer == nil {
		renderer = NewRenderer(false)
	}

	model := newTUIModel(sess, renderer)
	program := tea.NewProgram(model, programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

type tuiModel struct {
	sess     *session.Session
	render   *Renderer
	input    textinput.Model
	out      *bytes.Buffer
	message  string
	showHelp bool
	quitting bool
}

func newTUIModel(sess *session.Session, renderer *Renderer) *tuiModel {
	out := &bytes.Buffer{}

	input := textinput.New()
	input.Prompt = sess.Prompt()
	input.Placeholder = "add <title>"
	input.CharLimit = 512
	input.Focus()

	return &tuiModel{
		// Output from commands is captured and shown below the list.
		sess:   sess.Redirect(out, out),
		render: renderer,
		input:  input,
		out:    out,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyF1:
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the input line through the session.
func (m *tuiModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.out.Reset()

	// The list is always on screen.
	if cmd, err := command.Parse(line); err == nil && cmd.Kind == command.KindList {
		m.message = ""
		return m, nil
	}

	if !m.sess.ExecuteLine(line) {
		m.quitting = true
		return m, tea.Quit
	}
	m.message = strings.TrimRight(m.out.String(), "\n")
	return m, nil
}

func (m *tuiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	m.writeTitle(&b)
	if m.showHelp {
		writeHelp(&b)
	}
	m.writeList(&b)
	m.writeMessage(&b)
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	writeFooter(&b)
	return b.String()
}

func (m *tuiModel) writeTitle(b *strings.Builder) {
	title := "Daily Planner"
	b.WriteString(m.render.paint(m.render.styles.heading, title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *tuiModel) writeList(b *strings.Builder) {
	items, ok := m.sess.Manager().List()
	m.render.List(b, items, ok)
	b.WriteString("\n")
}

func (m *tuiModel) writeMessage(b *strings.Builder) {
	if m.message == "" {
		return
	}
	b.WriteString(m.message)
	b.WriteString("\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString(command.HelpText + "\n")
	b.WriteString("  enter        Run the command\n")
	b.WriteString("  f1           Toggle this help\n")
	b.WriteString("  esc, ctrl+c  Quit\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("f1 help | esc quit\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Package session drives a todo list from parsed commands and runs the
// interactive read-eval-print loop.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/planner-go/internal/command"
	"github.com/nibzard/planner-go/internal/todo"
)

// Banner is printed when the interactive loop starts.
const Banner = "Welcome to Daily Planner!"

// MessageKind classifies a line of user-facing output.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// Renderer formats session output.
type Renderer interface {
	List(w io.Writer, items iter.Seq[todo.Item], nonEmpty bool)
	Help(w io.Writer)
	Message(w io.Writer, kind MessageKind, text string)
}

// Session owns a todo manager and the file it is persisted to.
type Session struct {
	mgr    *todo.Manager
	path   string
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
	render Renderer
	prompt string

	saveErr error
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets the writers for normal output and error messages.
func WithOutput(out, errOut io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
		if errOut != nil {
			s.errOut = errOut
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer sets how lists, help and messages are printed.
func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.render = r
		}
	}
}

// WithPrompt sets the prompt shown by Run before each line.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// New creates a session over mgr that saves to path after every change.
func New(mgr *todo.Manager, path string, opts ...Option) *Session {
	if mgr == nil {
		mgr = todo.NewManager()
	}
	s := &Session{
		mgr:    mgr,
		path:   path,
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}),
		render: PlainRenderer{},
		prompt: "> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the todo file at path and creates a session over it. A file
// that cannot be used is logged and replaced by an empty list.
func Open(path string, opts ...Option) (*Session, todo.LoadResult) {
	mgr, result := todo.Load(path)
	s := New(mgr, path, opts...)
	switch {
	case result.Outcome == todo.LoadMissing:
		s.logger.Info("todo file not found, starting empty", "path", path)
	case result.FellBack():
		s.logger.Warn("todo file unreadable, starting empty", "path", path, "outcome", result.Outcome, "err", result.Err)
	default:
		s.logger.Debug("todo file loaded", "path", path, "count", result.Count)
	}
	return s, result
}

// Manager returns the session's todo manager.
func (s *Session) Manager() *todo.Manager {
	return s.mgr
}

// Path returns the todo file path.
func (s *Session) Path() string {
	return s.path
}

// Redirect returns a session sharing s's manager, file and settings that
// writes its output to out and errOut instead.
func (s *Session) Redirect(out, errOut io.Writer) *Session {
	clone := *s
	clone.out = out
	clone.errOut = errOut
	return &clone
}

// Renderer returns the renderer used for output.
func (s *Session) Renderer() Renderer {
	return s.render
}

// SaveErr returns the error from the most recent save, or nil.
func (s *Session) SaveErr() error {
	return s.saveErr
}

// Prompt returns the interactive prompt.
func (s *Session) Prompt() string {
	return s.prompt
}

// Execute runs cmd and reports whether the session should continue.
func (s *Session) Execute(cmd command.Command) bool {
	switch cmd.Kind {
	case command.KindAdd:
		item := s.mgr.Add(cmd.Title)
		s.logger.Info("todo added", "id", item.ID, "title", item.Title)
		s.render.Message(s.out, MessageSuccess, fmt.Sprintf("added %d: %s", item.ID, item.Title))
		s.save()
	case command.KindDelete:
		if s.mgr.Delete(cmd.ID) {
			s.logger.Info("todo deleted", "id", cmd.ID)
			s.render.Message(s.out, MessageSuccess, fmt.Sprintf("deleted %d", cmd.ID))
		} else {
			s.render.Message(s.out, MessageWarning, "no such id")
		}
		s.save()
	case command.KindComplete:
		if s.mgr.Complete(cmd.ID) {
			s.logger.Info("todo completed", "id", cmd.ID)
			s.render.Message(s.out, MessageSuccess, fmt.Sprintf("completed %d", cmd.ID))
		} else {
			s.render.Message(s.out, MessageWarning, "no such id")
		}
		s.save()
	case command.KindList:
		items, ok := s.mgr.List()
		s.render.List(s.out, items, ok)
	case command.KindHelp:
		s.render.Help(s.out)
	case command.KindExit:
		return false
	default:
		s.logger.Error("unhandled command", "kind", cmd.Kind)
	}
	return true
}

// ExecuteLine parses and runs one input line. Parse errors are printed and
// leave the list untouched; an empty line does nothing.
func (s *Session) ExecuteLine(line string) bool {
	cmd, err := command.Parse(line)
	if err != nil {
		if !errors.Is(err, command.ErrEmpty) {
			s.logger.Debug("rejected input", "line", line, "err", err)
			s.render.Message(s.errOut, MessageError, "error: "+err.Error())
		}
		return true
	}
	return s.Execute(cmd)
}

// save writes the list to disk. Failures are reported but the in-memory
// change is kept.
func (s *Session) save() {
	s.saveErr = s.mgr.Save(s.path)
	if err := s.saveErr; err != nil {
		s.logger.Error("save failed", "path", s.path, "err", err)
		s.render.Message(s.errOut, MessageError, fmt.Sprintf("save error: %v", err))
		return
	}
	s.logger.Debug("todo saved", "path", s.path, "count", s.mgr.Len())
}

// Run prints the banner and reads commands from in until exit, EOF or ctx
// is cancelled. Only read errors are returned.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.render.Message(s.out, MessageInfo, Banner)
	s.render.Help(s.out)

	lines := make(chan string)
	errc := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		fmt.Fprint(s.out, s.prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case err := <-errc:
			fmt.Fprintln(s.out)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		case line := <-lines:
			if !s.ExecuteLine(line) {
				return nil
			}
		}
	}
}

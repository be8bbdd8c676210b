// Package ui provides the styled renderer and the terminal interface.
package ui

import (
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/planner-go/internal/command"
	"github.com/nibzard/planner-go/internal/session"
	"github.com/nibzard/planner-go/internal/todo"
)

// Renderer prints session output with lipgloss styles. With color disabled
// the output matches session.PlainRenderer byte for byte.
type Renderer struct {
	color  bool
	styles styles
}

// NewRenderer returns a renderer; color selects styled or plain output.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color, styles: newStyles()}
}

// paint renders text with style, or returns it unchanged when color is off.
func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}

// Color reports whether the renderer styles its output.
func (r *Renderer) Color() bool {
	return r.color
}

// List prints one line per item, or the empty-list text.
func (r *Renderer) List(w io.Writer, items iter.Seq[todo.Item], nonEmpty bool) {
	if !nonEmpty {
		fmt.Fprintln(w, r.paint(r.styles.muted, session.EmptyListText))
		return
	}
	for item := range items {
		fmt.Fprintln(w, r.formatItem(item))
	}
}

func (r *Renderer) formatItem(item todo.Item) string {
	if !r.color {
		return session.FormatItem(item)
	}
	status := r.styles.pending
	if item.Done() {
		status = r.styles.completed
	}
	return fmt.Sprintf("ID: %s, Title: %s, Status: %s",
		r.styles.id.Render(fmt.Sprint(item.ID)),
		r.styles.title.Render(item.Title),
		status.Render(item.Status.String()),
	)
}

// Help prints the command summary.
func (r *Renderer) Help(w io.Writer) {
	fmt.Fprintln(w, r.paint(r.styles.muted, command.HelpText))
}

// Message prints text styled by kind.
func (r *Renderer) Message(w io.Writer, kind session.MessageKind, text string) {
	fmt.Fprintln(w, r.paint(r.messageStyle(kind), text))
}

func (r *Renderer) messageStyle(kind session.MessageKind) lipgloss.Style {
	switch kind {
	case session.MessageSuccess:
		return r.styles.success
	case session.MessageWarning:
		return r.styles.warning
	case session.MessageError:
		return r.styles.err
	default:
		return r.styles.info
	}
}

package session

import (
	"fmt"
	"io"
	"iter"

	"github.com/nibzard/planner-go/internal/command"
	"github.com/nibzard/planner-go/internal/todo"
)

// EmptyListText is printed by List when there are no items.
const EmptyListText = "No todos yet!"

// PlainRenderer prints unstyled text.
type PlainRenderer struct{}

// List prints one "ID: <id>, Title: <title>, Status: <status>" line per item.
func (PlainRenderer) List(w io.Writer, items iter.Seq[todo.Item], nonEmpty bool) {
	if !nonEmpty {
		fmt.Fprintln(w, EmptyListText)
		return
	}
	for item := range items {
		fmt.Fprintln(w, FormatItem(item))
	}
}

// Help prints the command summary.
func (PlainRenderer) Help(w io.Writer) {
	fmt.Fprintln(w, command.HelpText)
}

// Message prints text on its own line.
func (PlainRenderer) Message(w io.Writer, _ MessageKind, text string) {
	fmt.Fprintln(w, text)
}

// FormatItem formats an item as a list line.
func FormatItem(item todo.Item) string {
	return fmt.Sprintf("ID: %d, Title: %s, Status: %s", item.ID, item.Title, item.Status)
}

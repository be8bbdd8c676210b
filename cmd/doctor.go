package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nibzard/planner-go/internal/config"
	"github.com/nibzard/planner-go/internal/todo"
)

// doctorCommand reports configuration values and checks the todo file.
func (a *app) doctorCommand(args []string) error {
	flags := flag.NewFlagSet("planner doctor", flag.ContinueOnError)
	flags.SetOutput(a.io.Err)
	verbose := flags.Bool("v", false, "Verbose output")

	if err := flags.Parse(args); err != nil {
		return err
	}
	todoPath, err := optionalPath("doctor", flags.Args())
	if err != nil {
		return err
	}
	if todoPath == "" {
		todoPath = a.cfg.TodoFile
	}

	w := a.io.Out
	fmt.Fprintln(w, "Planner Doctor")
	fmt.Fprintln(w, "==============")
	fmt.Fprintln(w)

	allOK := true

	// Config values and where they came from
	fmt.Fprintln(w, "Config:")
	if file := a.sources.ConfigFile(); file != "" {
		fmt.Fprintf(w, "  File: %s\n", file)
	} else {
		fmt.Fprintln(w, "  File: (none)")
	}
	for _, field := range config.Fields() {
		source := a.sources.Sources[field]
		if source == config.SourceDefault && !*verbose {
			continue
		}
		fmt.Fprintf(w, "  %s = %q (%s)\n", field, a.cfg.Value(field), source)
	}
	fmt.Fprintln(w)

	// Todo file
	fmt.Fprintf(w, "Todo file: %s\n", todoPath)
	data, err := os.ReadFile(todoPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(w, "  ⚠️  Not found (created on first change)")
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	default:
		if !a.checkTodoFile(todoPath, data, *verbose) {
			allOK = false
		}
	}
	fmt.Fprintln(w)

	// Overall status
	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed. The todo file would be replaced by an empty list.")
	return fmt.Errorf("doctor checks failed")
}

func (a *app) checkTodoFile(path string, data []byte, verbose bool) bool {
	w := a.io.Out

	result := todo.Validate(data)
	if !result.Valid {
		if result.Syntax != nil {
			fmt.Fprintf(w, "  ❌ Invalid JSON: %v\n", result.Syntax)
			return false
		}
		fmt.Fprintln(w, "  ❌ Schema validation failed:")
		for _, err := range result.Errors {
			fmt.Fprintf(w, "     - %v\n", err)
		}
		return false
	}

	mgr, err := todo.LoadStrict(path)
	if err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	}

	pending, completed := 0, 0
	for _, item := range mgr.Items() {
		if item.Done() {
			completed++
		} else {
			pending++
		}
	}
	fmt.Fprintf(w, "  ✅ %d items (%d pending, %d completed)\n", mgr.Len(), pending, completed)

	alloc := mgr.Allocator()
	if free := alloc.FreeCount(); free > 0 {
		fmt.Fprintf(w, "  Next id: %d (%d free ids)\n", alloc.Peek(), free)
	} else {
		fmt.Fprintf(w, "  Next id: %d\n", alloc.Counter())
	}
	if verbose {
		fmt.Fprintln(w, "  Schema:")
		fmt.Fprintln(w, indent(todo.SchemaJSON(), "    "))
	}
	return true
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\n"+prefix)
}

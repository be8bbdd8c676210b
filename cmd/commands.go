package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nibzard/planner-go/internal/config"
	"github.com/nibzard/planner-go/internal/logging"
	"github.com/nibzard/planner-go/internal/plannerdir"
	"github.com/nibzard/planner-go/internal/session"
	"github.com/nibzard/planner-go/internal/todo"
)

// lsCommand lists todos grouped by status.
func (a *app) lsCommand(args []string) error {
	flags := flag.NewFlagSet("planner ls", flag.ContinueOnError)
	flags.SetOutput(a.io.Err)
	statusFilter := flags.String("status", "", "Filter by status (pending|completed)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	remaining := flags.Args()
	if len(remaining) >= 1 && *statusFilter == "" {
		if _, ok := parseStatus(remaining[0]); ok {
			*statusFilter = remaining[0]
			remaining = remaining[1:]
		}
	}
	path, err := optionalPath("ls", remaining)
	if err != nil {
		return err
	}

	var filter todo.Status
	if *statusFilter != "" {
		status, ok := parseStatus(*statusFilter)
		if !ok {
			return fmt.Errorf("invalid status %q, must be one of: pending, completed", *statusFilter)
		}
		filter = status
	}

	items := a.openSession(path).Manager().Items()
	if filter != "" {
		a.printItems(filterItems(items, filter))
		return nil
	}
	a.printItemsByStatus("pending", items, todo.StatusPending)
	a.printItemsByStatus("completed", items, todo.StatusCompleted)
	if len(items) == 0 {
		fmt.Fprintln(a.io.Out, session.EmptyListText)
	}
	return nil
}

func parseStatus(s string) (todo.Status, bool) {
	switch strings.ToLower(s) {
	case "pending":
		return todo.StatusPending, true
	case "completed", "done":
		return todo.StatusCompleted, true
	}
	return "", false
}

func filterItems(items []todo.Item, status todo.Status) []todo.Item {
	var matching []todo.Item
	for _, item := range items {
		if item.Status == status {
			matching = append(matching, item)
		}
	}
	return matching
}

func (a *app) printItemsByStatus(label string, items []todo.Item, status todo.Status) {
	matching := filterItems(items, status)
	if len(matching) == 0 {
		return
	}
	fmt.Fprintf(a.io.Out, "%s (%d):\n", label, len(matching))
	for _, item := range matching {
		fmt.Fprintf(a.io.Out, "  %s\n", session.FormatItem(item))
	}
	fmt.Fprintln(a.io.Out)
}

func (a *app) printItems(items []todo.Item) {
	if len(items) == 0 {
		fmt.Fprintln(a.io.Out, "No todos found.")
		return
	}
	for _, item := range items {
		fmt.Fprintln(a.io.Out, session.FormatItem(item))
	}
}

// logsCommand prints the configured log file.
func (a *app) logsCommand(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("planner logs", flag.ContinueOnError)
	flags.SetOutput(a.io.Err)
	follow := flags.Bool("f", false, "Follow the log (like tail -f)")
	flags.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := flags.Int("n", 0, "Number of lines to show (0 = all)")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("logs: unexpected arguments: %v", flags.Args())
	}

	if a.cfg.LogFile == "" {
		fmt.Fprintln(a.io.Out, "No log file configured (set log_file or PLANNER_LOG_FILE).")
		return nil
	}
	if _, err := os.Stat(a.cfg.LogFile); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(a.io.Out, "No log file at %s yet.\n", a.cfg.LogFile)
		return nil
	}

	if *follow {
		fmt.Fprintf(a.io.Err, "Tailing: %s (Ctrl+C to stop)\n", a.cfg.LogFile)
	}
	return logging.TailLog(ctx, a.io.Out, a.cfg.LogFile, *n, *follow)
}

// configCommand prints an example config, or writes one with "init".
func (a *app) configCommand(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.io.Out, config.ExampleConfig())
		return nil
	}
	if args[0] != "init" {
		return fmt.Errorf("config: unknown subcommand %q", args[0])
	}
	path, err := optionalPath("config init", args[1:])
	if err != nil {
		return err
	}
	if path == "" {
		path = plannerdir.DefaultConfigFile
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config file %s already exists", path)
		}
		return fmt.Errorf("create config file: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(config.ExampleConfig()); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Fprintf(a.io.Out, "Wrote %s\n", path)
	return nil
}

// Package cmd implements the CLI command structure for planner.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/planner-go/internal/command"
	"github.com/nibzard/planner-go/internal/config"
	"github.com/nibzard/planner-go/internal/logging"
	"github.com/nibzard/planner-go/internal/session"
	"github.com/nibzard/planner-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Streams holds the standard streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// app carries what every subcommand needs.
type app struct {
	cfg     *config.Config
	sources *config.ConfigWithSources
	logger  *logging.Logger
	io      Streams
}

// Run executes the planner CLI on the process's standard streams.
func Run(ctx context.Context, args []string) error {
	return RunWithStreams(ctx, args, StdStreams())
}

// RunWithStreams executes the planner CLI on the given streams.
func RunWithStreams(ctx context.Context, args []string, streams Streams) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.SetOutput(streams.Err)
	fs.Usage = func() {
		printUsage(fs, streams.Err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, streams.Out)
		return nil
	}
	if *showVersion {
		return versionCommand(streams.Out)
	}

	cfg := cws.Config
	logger, err := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Timestamps: cfg.LogTimestamps,
		Caller:     cfg.LogCaller,
		File:       cfg.LogFile,
		Output:     streams.Err,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Close()

	a := &app{cfg: cfg, sources: cws, logger: logger, io: streams}
	logger.Debug("config loaded", "todo_file", cfg.TodoFile, "config_file", cws.ConfigFile())

	// Determine the subcommand
	// If no args, use "repl" as default
	subcommand := "repl"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	// Execute the subcommand
	switch subcommand {
	case "repl":
		return a.replCommand(ctx, remainingArgs)
	case "tui":
		return a.tuiCommand(ctx, remainingArgs)
	case "doctor":
		return a.doctorCommand(remainingArgs)
	case "ls":
		return a.lsCommand(remainingArgs)
	case "logs":
		return a.logsCommand(ctx, remainingArgs)
	case "config":
		return a.configCommand(remainingArgs)
	case "add", "delete", "complete", "list":
		return a.oneShotCommand(subcommand, remainingArgs)
	case "version":
		return versionCommand(streams.Out)
	case "help":
		printUsage(fs, streams.Out)
		return nil
	default:
		fmt.Fprintf(streams.Err, "Unknown command: %s\n", subcommand)
		if suggestion := command.Suggest(subcommand); suggestion != "" {
			fmt.Fprintf(streams.Err, "Did you mean %q?\n", suggestion)
		}
		printUsage(fs, streams.Err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// color reports whether output to w should be styled.
func (a *app) color(w io.Writer) bool {
	return a.cfg.Color && ui.IsTTY(w)
}

// openSession loads the todo file named by the config, or path when set.
func (a *app) openSession(path string) *session.Session {
	if path == "" {
		path = a.cfg.TodoFile
	}
	sess, _ := session.Open(path,
		session.WithOutput(a.io.Out, a.io.Err),
		session.WithLogger(a.logger.Logger),
		session.WithRenderer(ui.NewRenderer(a.color(a.io.Out))),
		session.WithPrompt(a.cfg.Prompt),
	)
	return sess
}

// optionalPath returns the single optional file argument.
func optionalPath(name string, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%s: unexpected arguments: %v", name, args[1:])
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", nil
}

// replCommand runs the interactive loop.
func (a *app) replCommand(ctx context.Context, args []string) error {
	path, err := optionalPath("repl", args)
	if err != nil {
		return err
	}
	return a.openSession(path).Run(ctx, a.io.In)
}

// tuiCommand runs the terminal UI.
func (a *app) tuiCommand(ctx context.Context, args []string) error {
	path, err := optionalPath("tui", args)
	if err != nil {
		return err
	}
	sess := a.openSession(path)
	return ui.RunTUI(ctx, sess, ui.WithRenderer(ui.NewRenderer(a.color(a.io.Out))))
}

// oneShotCommand runs a single command line, as in "planner add buy milk".
func (a *app) oneShotCommand(verb string, args []string) error {
	cmd, err := command.ParseArgs(append([]string{verb}, args...))
	if err != nil {
		return err
	}
	sess := a.openSession("")
	sess.Execute(cmd)
	if err := sess.SaveErr(); err != nil {
		return fmt.Errorf("saving todo file: %w", err)
	}
	return nil
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "planner version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Planner - a daily to-do list manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  planner [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  repl [file]          Interactive prompt (default command)")
	fmt.Fprintln(w, "  tui [file]           Launch terminal UI")
	fmt.Fprintln(w, "  add <title>          Add a todo and exit")
	fmt.Fprintln(w, "  complete <id>        Mark a todo completed and exit")
	fmt.Fprintln(w, "  delete <id>          Delete a todo and exit")
	fmt.Fprintln(w, "  list                 List todos and exit")
	fmt.Fprintln(w, "  ls [status] [file]   List todos grouped by status")
	fmt.Fprintln(w, "  doctor [file]        Check config and todo file validity")
	fmt.Fprintln(w, "  logs                 Show the log file")
	fmt.Fprintln(w, "  config [init]        Print or write an example config file")
	fmt.Fprintln(w, "  version              Show version information")
	fmt.Fprintln(w, "  help                 Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Interactive commands:")
	fmt.Fprintln(w, "  "+strings.TrimPrefix(command.HelpText, "Commands: "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logs Options (use with 'logs' command):")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
}

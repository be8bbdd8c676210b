// Package command parses planner input lines into commands.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Kind identifies a command.
type Kind int

const (
	KindAdd Kind = iota + 1
	KindDelete
	KindComplete
	KindList
	KindHelp
	KindExit
)

var kindNames = map[Kind]string{
	KindAdd:      "add",
	KindDelete:   "delete",
	KindComplete: "complete",
	KindList:     "list",
	KindHelp:     "help",
	KindExit:     "exit",
}

// verbs lists the verbs in help order.
var verbs = []string{"add", "complete", "delete", "list", "help", "exit"}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mutates reports whether the command changes the todo list.
func (k Kind) Mutates() bool {
	return k == KindAdd || k == KindDelete || k == KindComplete
}

// HelpText is the one-line command summary.
const HelpText = "Commands: add <title>, complete <id>, delete <id>, list, help, exit"

// Command is a parsed input line. Title is set for KindAdd, ID for
// KindDelete and KindComplete.
type Command struct {
	Kind  Kind
	Title string
	ID    int
}

var (
	ErrEmpty          = errors.New("empty command")
	ErrTitleRequired  = errors.New("title is required")
	ErrIDRequired     = errors.New("id is required")
	ErrIDNotNumber    = errors.New("id must be a number")
	ErrUnknownCommand = errors.New("unknown command")
)

// UnknownError reports an unrecognised verb.
type UnknownError struct {
	Verb       string
	Suggestion string // closest known verb, or ""
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q (did you mean %q?)", e.Verb, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q", e.Verb)
}

func (e *UnknownError) Unwrap() error {
	return ErrUnknownCommand
}

// Verbs returns the recognised verbs in help order.
func Verbs() []string {
	return append([]string(nil), verbs...)
}

// Parse parses one input line. The verb is the first whitespace-separated
// token, matched case-insensitively; the rest of the line is the argument.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmpty
	}

	verb, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		verb, arg = line[:i], strings.TrimSpace(line[i:])
	}

	switch strings.ToLower(verb) {
	case "add":
		if arg == "" {
			return Command{}, ErrTitleRequired
		}
		return Command{Kind: KindAdd, Title: arg}, nil
	case "delete":
		id, err := parseID(arg)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindDelete, ID: id}, nil
	case "complete":
		id, err := parseID(arg)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindComplete, ID: id}, nil
	case "list":
		return Command{Kind: KindList}, nil
	case "help":
		return Command{Kind: KindHelp}, nil
	case "exit":
		return Command{Kind: KindExit}, nil
	default:
		return Command{}, &UnknownError{Verb: verb, Suggestion: Suggest(verb)}
	}
}

// ParseArgs parses a command given as separate arguments, as on a command line.
func ParseArgs(args []string) (Command, error) {
	return Parse(strings.Join(args, " "))
}

func parseID(arg string) (int, error) {
	if arg == "" {
		return 0, ErrIDRequired
	}
	id, err := strconv.ParseUint(arg, 10, 31)
	if err != nil {
		return 0, ErrIDNotNumber
	}
	return int(id), nil
}

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 2

// Suggest returns the known verb closest to word, or "" when none is close.
func Suggest(word string) string {
	word = strings.ToLower(word)
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, verb := range verbs {
		if d := levenshtein.ComputeDistance(word, verb); d < bestDist {
			best, bestDist = verb, d
		}
	}
	return best
}

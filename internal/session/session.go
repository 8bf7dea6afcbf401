// Package session replays scripted input against a mounted editor.
//
// A script holds one step per line:
//
//	focus 2          # focus the second editable block
//	type Hello
//	key enter
//	insert blockquote
//	click ul         # press a toolbar button
//	caret end
//	next | prev      # move between editable blocks
//	blur
//
// Blank lines and lines starting with # are ignored.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
)

// Step kinds.
const (
	OpFocus  = "focus"
	OpBlur   = "blur"
	OpKey    = "key"
	OpType   = "type"
	OpInsert = "insert"
	OpClick  = "click"
	OpCaret  = "caret"
	OpNext   = "next"
	OpPrev   = "prev"
)

var (
	// ErrUnknownStep is returned for a step with an unknown verb.
	ErrUnknownStep = errors.New("unknown step")

	// ErrBadArgument is returned for a step whose argument does not fit.
	ErrBadArgument = errors.New("bad step argument")

	// ErrNoTarget is returned when a step refers to something missing.
	ErrNoTarget = errors.New("step target not found")
)

// Step is one scripted action. Line is 1-based, 0 for steps that did not
// come from a script.
type Step struct {
	Line int
	Op   string
	Arg  string
}

func (s Step) String() string {
	if s.Arg == "" {
		return s.Op
	}
	return s.Op + " " + s.Arg
}

// ParseStep parses a single step.
func ParseStep(line string) (Step, error) {
	line = strings.TrimSpace(line)
	op, arg, _ := strings.Cut(line, " ")
	op = strings.ToLower(op)
	arg = strings.TrimSpace(arg)

	switch op {
	case OpBlur, OpNext, OpPrev:
		if arg != "" {
			return Step{}, fmt.Errorf("%w: %s takes no argument", ErrBadArgument, op)
		}
	case OpFocus:
		if n, err := strconv.Atoi(arg); err != nil || n < 1 {
			return Step{}, fmt.Errorf("%w: focus needs a position >= 1, got %q", ErrBadArgument, arg)
		}
	case OpKey:
		if _, err := hostdom.ParseKey(arg); err != nil {
			return Step{}, fmt.Errorf("%w: %v", ErrBadArgument, err)
		}
	case OpCaret:
		if arg != "start" && arg != "end" {
			return Step{}, fmt.Errorf("%w: caret must be start or end, got %q", ErrBadArgument, arg)
		}
	case OpInsert, OpClick:
		if arg == "" {
			return Step{}, fmt.Errorf("%w: %s needs a tag", ErrBadArgument, op)
		}
		arg = strings.ToLower(arg)
	case OpType:
		// Text is taken verbatim; it may be empty.
	default:
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, op)
	}
	return Step{Op: op, Arg: arg}, nil
}

// Parse reads a script.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.Index(line, " #"); i >= 0 && !strings.HasPrefix(line, OpType+" ") {
			line = strings.TrimSpace(line[:i])
		}

		step, err := ParseStep(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		step.Line = lineNo
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

// ParseAll parses steps given one per string, as on the command line.
func ParseAll(lines []string) ([]Step, error) {
	steps := make([]Step, 0, len(lines))
	for i, line := range lines {
		step, err := ParseStep(line)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

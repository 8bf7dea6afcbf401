package session

import (
	"fmt"
	"strconv"

	"github.com/open-cli-collective/semantic-editor/pkg/editor"
	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
)

// Runner applies steps to one editor.
type Runner struct {
	ed *editor.Editor
}

// NewRunner creates a runner for ed.
func NewRunner(ed *editor.Editor) *Runner {
	return &Runner{ed: ed}
}

// Run applies steps in order and stops at the first failure.
func (r *Runner) Run(steps []Step) error {
	for _, s := range steps {
		if err := r.Apply(s); err != nil {
			if s.Line > 0 {
				return fmt.Errorf("line %d: %s: %w", s.Line, s, err)
			}
			return fmt.Errorf("%s: %w", s, err)
		}
	}
	return nil
}

// Apply runs a single step.
func (r *Runner) Apply(s Step) error {
	doc := r.ed.Document()

	switch s.Op {
	case OpFocus:
		n, err := strconv.Atoi(s.Arg)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadArgument, err)
		}
		editables := r.ed.Editables()
		if n < 1 || n > len(editables) {
			return fmt.Errorf("%w: editable block %d of %d", ErrNoTarget, n, len(editables))
		}
		return doc.Focus(editables[n-1])

	case OpBlur:
		return doc.Blur(doc.ActiveElement())

	case OpKey:
		k, err := hostdom.ParseKey(s.Arg)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadArgument, err)
		}
		return doc.PressKey(k)

	case OpType:
		return doc.TypeText(s.Arg)

	case OpInsert:
		d := r.ed.Registry().Lookup(s.Arg)
		if d == nil {
			return fmt.Errorf("%w: no block <%s> in catalog", ErrNoTarget, s.Arg)
		}
		_, err := r.ed.InsertAfter(d, nil, true)
		return err

	case OpClick:
		button := editor.ToolbarButton(r.ed, s.Arg)
		if button == nil {
			return fmt.Errorf("%w: no toolbar button for <%s>", ErrNoTarget, s.Arg)
		}
		return doc.Click(button)

	case OpCaret:
		el := doc.ActiveElement()
		if el == nil {
			return hostdom.ErrNoFocus
		}
		return doc.CollapseInto(el, s.Arg == "start")

	case OpNext:
		r.ed.SelectNext(r.ed.Root(), false)
		return nil

	case OpPrev:
		r.ed.SelectPrevious(r.ed.Root(), false)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownStep, s.Op)
}

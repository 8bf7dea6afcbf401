// Package schema defines the block catalog the editor matches elements against.
//
// A catalog is a flat, ordered table of descriptors. Order matters: when an
// element structurally satisfies more than one descriptor, the first one wins.
package schema

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
)

// DefaultEnterTag is the tag created on Enter when a descriptor sets none.
const DefaultEnterTag = "p"

var (
	// ErrEmptyCatalog is returned when a registry would hold no descriptors.
	ErrEmptyCatalog = errors.New("catalog has no descriptors")

	// ErrNoPlacement is returned for descriptors that are neither allowed at
	// the root nor under any parent.
	ErrNoPlacement = errors.New("descriptor must have at least one valid parent or be allowed at root")

	// ErrNoTagName is returned for descriptors without a tag name.
	ErrNoTagName = errors.New("descriptor has no tag name")
)

// ConfigError reports an unusable catalog or descriptor.
type ConfigError struct {
	Tag string // offending descriptor tag, empty for catalog-wide errors
	Err error
}

func (e *ConfigError) Error() string {
	if e.Tag == "" {
		return "invalid configuration: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid descriptor <%s>: %s", e.Tag, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Session is the slice of a mounted editor that Enter overrides may use.
type Session interface {
	Root() *html.Node
	Bind(el *html.Node) bool
	Focus(el *html.Node) error
}

// BuildFunc populates a freshly created, empty element.
type BuildFunc func(target *html.Node)

// EnterFunc replaces the default Enter behavior of an editable block.
type EnterFunc func(target *html.Node, s Session) error

// Descriptor describes one block type: its tag, where it may be placed and
// how it behaves while editing.
type Descriptor struct {
	TagName      string
	ValidParents []string
	RootAllowed  bool
	Insertable   bool
	Editable     bool

	// Children lists the tags appended to a new instance when Build is nil.
	Children []string
	Build    BuildFunc

	// EnterCreateTag is the sibling created on Enter. Defaults to "p".
	EnterCreateTag string
	OnEnter        EnterFunc
}

// Validate checks that the descriptor can be matched somewhere.
func (d *Descriptor) Validate() error {
	if d.TagName == "" {
		return &ConfigError{Err: ErrNoTagName}
	}
	if !d.RootAllowed && len(d.ValidParents) == 0 {
		return &ConfigError{Tag: d.TagName, Err: ErrNoPlacement}
	}
	return nil
}

// EnterTag returns the tag of the sibling created on Enter.
func (d *Descriptor) EnterTag() string {
	if d.EnterCreateTag == "" {
		return DefaultEnterTag
	}
	return d.EnterCreateTag
}

// AllowedUnder reports whether parentTag is one of the valid parents.
func (d *Descriptor) AllowedUnder(parentTag string) bool {
	for _, p := range d.ValidParents {
		if p == parentTag {
			return true
		}
	}
	return false
}

// BuildInto runs the build hook on target, falling back to appending one
// empty element per entry of Children.
func (d *Descriptor) BuildInto(target *html.Node) {
	if d.Build != nil {
		d.Build(target)
		return
	}
	for _, tag := range d.Children {
		target.AppendChild(hostdom.NewElement(tag))
	}
}

// Clone returns a copy of d that shares no slices with it.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	c.ValidParents = append([]string(nil), d.ValidParents...)
	c.Children = append([]string(nil), d.Children...)
	return &c
}

func (d *Descriptor) String() string {
	return "<" + d.TagName + ">"
}

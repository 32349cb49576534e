package inspect

import (
	"strconv"
	"strings"
)

// ElementFormat selects how host UI elements render.
type ElementFormat int

const (
	// ElementSummary renders the tag name with attribute and child counts.
	ElementSummary ElementFormat = iota
	// ElementInspect renders the tag name with the full attribute list.
	ElementInspect
	// ElementDisabled renders the generic placeholder.
	ElementDisabled
)

// String returns the string representation of the format
func (f ElementFormat) String() string {
	switch f {
	case ElementSummary:
		return "summary"
	case ElementInspect:
		return "inspect"
	case ElementDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ParseElementFormat converts a string to an ElementFormat, defaulting to
// ElementSummary.
func ParseElementFormat(s string) ElementFormat {
	switch strings.ToLower(s) {
	case "inspect":
		return ElementInspect
	case "disabled":
		return ElementDisabled
	default:
		return ElementSummary
	}
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is the capability interface for host UI elements. A host that
// can supply elements (a browser-style runtime, a GUI shell) implements it
// on its node type and sets hostenv.Context.UICapable; everywhere else
// elements render as a generic placeholder.
type Element interface {
	TagName() string
	Attributes() []Attr
	ChildCount() int
}

// StackTracer is the capability interface for errors that carry a
// formatted stack trace.
type StackTracer interface {
	StackTrace() string
}

const genericElement = "[DOM Element]"

func (ins *Inspector) element(st *state, el Element) {
	if ins.opts.ElementFormat == ElementDisabled || !ins.opts.Context.UICapable {
		ins.token(st, tokenPlain, genericElement)
		return
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(el.TagName())
	switch ins.opts.ElementFormat {
	case ElementInspect:
		for _, a := range el.Attributes() {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteByte('"')
		}
	default:
		b.WriteString(" attributes=")
		b.WriteString(strconv.Itoa(len(el.Attributes())))
	}
	b.WriteString(" children=")
	b.WriteString(strconv.Itoa(el.ChildCount()))
	b.WriteByte('>')
	ins.token(st, tokenPlain, b.String())
}

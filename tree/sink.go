package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Sink is the host side of the "add a labelled field" contract. AddField
// returns the sink that receives the field's children.
type Sink interface {
	AddField(offset, length int, label string, value any) Sink
}

// Emit replays n's children into s in order.
func (n *Node) Emit(s Sink) {
	for _, c := range n.Children {
		sub := s.AddField(c.Offset, c.Length, c.Label, c.Value)
		if len(c.Children) > 0 {
			c.Emit(sub)
		}
	}
}

// Emit replays the whole tree, root included.
func (t *Tree) Emit(s Sink) {
	sub := s.AddField(t.Root.Offset, t.Root.Length, t.Root.Label, t.Root.Value)
	t.Root.Emit(sub)
}

// Printer is a Sink writing an indented text rendering.
type Printer struct {
	w     *bufio.Writer
	depth int
	err   *error
}

// NewPrinter returns a Printer writing to w. Call Flush when done.
func NewPrinter(w io.Writer) *Printer {
	var err error
	return &Printer{w: bufio.NewWriter(w), err: &err}
}

func (p *Printer) AddField(offset, length int, label string, value any) Sink {
	if *p.err == nil {
		_, *p.err = fmt.Fprintf(p.w, "%s[%d:%d] %s\n", strings.Repeat("  ", p.depth), offset, length, label)
	}
	return &Printer{w: p.w, depth: p.depth + 1, err: p.err}
}

// Flush writes any buffered output and reports the first write error.
func (p *Printer) Flush() error {
	if *p.err != nil {
		return *p.err
	}
	return p.w.Flush()
}

// Format writes t to w using a Printer.
func Format(w io.Writer, t *Tree) error {
	p := NewPrinter(w)
	t.Emit(p)
	for _, h := range t.Handoffs {
		if *p.err == nil {
			_, *p.err = fmt.Fprintf(p.w, "handoff %s selector %d [%d:%d] dissected=%t\n",
				h.Protocol, h.Selector, h.Offset, h.Length, h.Dissected)
		}
	}
	return p.Flush()
}

// Package tree holds the decode result of one message: an ordered tree of
// labelled byte ranges built append-only during a single walk of the
// buffer, plus the sub-protocol handoffs found on the way.
package tree

import "fmt"

// Marker flags nodes that report a decoding problem instead of a field.
type Marker int

const (
	NoMarker Marker = iota
	ShortData
	UnexpectedDataLength
	ExtraneousData
	MissingParameter
	Opaque
	Malformed
)

func (m Marker) String() string {
	switch m {
	case ShortData:
		return "Short Data (?)"
	case UnexpectedDataLength:
		return "Unexpected Data Length"
	case ExtraneousData:
		return "Extraneous Data"
	case MissingParameter:
		return "Missing Mandatory Parameter"
	case Opaque:
		return "Parameter Data"
	case Malformed:
		return "Malformed Packet"
	}
	return ""
}

// Node is one labelled byte range. Value optionally carries the decoded
// scalar shown in Label.
type Node struct {
	Label    string  `json:"label"`
	Offset   int     `json:"offset"`
	Length   int     `json:"length"`
	Value    any     `json:"value,omitempty"`
	Marker   Marker  `json:"marker,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Add appends a child node and returns it.
func (n *Node) Add(offset, length int, label string) *Node {
	c := &Node{Label: label, Offset: offset, Length: length}
	n.Children = append(n.Children, c)
	return c
}

// Addf appends a child node with a formatted label.
func (n *Node) Addf(offset, length int, format string, args ...any) *Node {
	return n.Add(offset, length, fmt.Sprintf(format, args...))
}

// AddValue appends a child node carrying a decoded value.
func (n *Node) AddValue(offset, length int, label string, v any) *Node {
	c := n.Add(offset, length, label)
	c.Value = v
	return c
}

// AddMarker appends a marker node labelled after the marker.
func (n *Node) AddMarker(m Marker, offset, length int) *Node {
	c := n.Add(offset, length, m.String())
	c.Marker = m
	return c
}

// Close sets the final length of a node opened before its extent was
// known, measured up to end, and appends suffix to its label. Only the
// code that created the node closes it, before moving on.
func (n *Node) Close(end int, suffix string) {
	n.Length = end - n.Offset
	n.Label += suffix
}

// Find returns the first node in depth-first order whose label equals
// label, or nil.
func (n *Node) Find(label string) *Node {
	if n.Label == label {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(label); f != nil {
			return f
		}
	}
	return nil
}

// Markers returns all nodes below n carrying marker m.
func (n *Node) Markers(m Marker) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.Marker == m {
			out = append(out, c)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// Handoff records a span that carries an embedded sub-protocol. Selector
// is the small integer the host uses to look the sub-dissector up.
type Handoff struct {
	Protocol  string `json:"protocol"`
	Selector  int    `json:"selector"`
	Offset    int    `json:"offset"`
	Length    int    `json:"length"`
	Dissected bool   `json:"dissected"`
}

// Tree is the decode result of one message.
type Tree struct {
	Root     *Node     `json:"root"`
	Handoffs []Handoff `json:"handoffs,omitempty"`
}

// New returns a tree whose root covers length bytes at offset.
func New(label string, offset, length int) *Tree {
	return &Tree{Root: &Node{Label: label, Offset: offset, Length: length}}
}

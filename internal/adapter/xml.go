package adapter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// xmlNode is a generic element tree. PAN-OS responses vary between software
// versions, so they are walked by element name instead of being decoded into
// fixed structs.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",chardata"`
	Nodes   []*xmlNode `xml:",any"`
}

func parseXML(body []byte) (*xmlNode, error) {
	var root xmlNode
	if err := xml.NewDecoder(bytes.NewReader(body)).Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return &root, nil
}

func (n *xmlNode) name() string {
	return n.XMLName.Local
}

func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (n *xmlNode) text() string {
	return strings.TrimSpace(n.Content)
}

// innerText joins the text of n and every descendant with single spaces.
func (n *xmlNode) innerText() string {
	var parts []string
	n.walk(func(node *xmlNode) bool {
		if t := node.text(); t != "" {
			parts = append(parts, t)
		}
		return true
	})
	return strings.Join(parts, " ")
}

// walk visits n and its descendants in document order until fn returns false.
func (n *xmlNode) walk(fn func(*xmlNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Nodes {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// child returns the first direct child called name, or nil.
func (n *xmlNode) child(name string) *xmlNode {
	for _, c := range n.Nodes {
		if c.name() == name {
			return c
		}
	}
	return nil
}

// childText returns the trimmed text of the first direct child called name.
func (n *xmlNode) childText(name string) string {
	if c := n.child(name); c != nil {
		return c.text()
	}
	return ""
}

// path follows direct children by name; "*" matches any element.
func (n *xmlNode) path(names ...string) []*xmlNode {
	current := []*xmlNode{n}
	for _, name := range names {
		var next []*xmlNode
		for _, node := range current {
			for _, c := range node.Nodes {
				if name == "*" || c.name() == name {
					next = append(next, c)
				}
			}
		}
		current = next
	}
	return current
}

// descendants returns every element below n called name, in document order.
func (n *xmlNode) descendants(name string) []*xmlNode {
	var found []*xmlNode
	for _, c := range n.Nodes {
		c.walk(func(node *xmlNode) bool {
			if node.name() == name {
				found = append(found, node)
			}
			return true
		})
	}
	return found
}

// descendant returns the first element below n called name, or nil.
func (n *xmlNode) descendant(name string) *xmlNode {
	var found *xmlNode
	for _, c := range n.Nodes {
		if !c.walk(func(node *xmlNode) bool {
			if node.name() == name {
				found = node
				return false
			}
			return true
		}) {
			break
		}
	}
	return found
}

// descendantText returns the inner text of the first element called name.
func (n *xmlNode) descendantText(name string) string {
	if d := n.descendant(name); d != nil {
		return d.innerText()
	}
	return ""
}

// firstChildText tries each child name in turn and returns the first
// non-empty text found.
func (n *xmlNode) firstChildText(names ...string) string {
	for _, name := range names {
		if t := n.childText(name); t != "" {
			return t
		}
	}
	return ""
}

// parseInt parses a counter value; anything unparsable counts as zero.
func parseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseUint(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseIntList parses a comma-separated list of integers, skipping blanks.
// It returns false if any element is not an integer.
func parseIntList(s string) ([]int64, bool) {
	var values []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

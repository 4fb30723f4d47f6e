// Package sym implements the symbol grammar used to address reflected
// variables.
//
// A symbol is a dot-separated list of segments. A segment is an index
// (decimal digits), a name, or empty:
//
//	1               location 1
//	0.1             descriptor set 0, binding 1
//	light.0         first member of the block named "light"
//	1.0.bones.4     fifth element of member "bones" in descriptor (1, 0)
//	.modelview      member "modelview" of the push-constant block
package sym

import (
	"strconv"
	"strings"
)

// SegmentKind classifies a symbol segment.
type SegmentKind uint8

const (
	SegmentEmpty SegmentKind = iota
	SegmentIndex
	SegmentName
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentEmpty:
		return "Empty"
	case SegmentIndex:
		return "Index"
	case SegmentName:
		return "Name"
	default:
		return "Unknown"
	}
}

// Segment is one dot-separated element of a symbol. Index is set for
// SegmentIndex, Name for SegmentName.
type Segment struct {
	Kind  SegmentKind
	Index uint32
	Name  string
}

func (s Segment) String() string {
	switch s.Kind {
	case SegmentIndex:
		return strconv.FormatUint(uint64(s.Index), 10)
	case SegmentName:
		return s.Name
	default:
		return ""
	}
}

func classify(text string) Segment {
	if text == "" {
		return Segment{Kind: SegmentEmpty}
	}
	if isDigits(text) {
		// Digit runs that overflow an index are kept as names.
		if n, err := strconv.ParseUint(text, 10, 32); err == nil {
			return Segment{Kind: SegmentIndex, Index: uint32(n)}
		}
	}
	return Segment{Kind: SegmentName, Name: text}
}

func isDigits(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// Cursor walks the segments of a symbol from left to right.
type Cursor struct {
	rest string
	done bool
}

// Parse returns a cursor positioned before the first segment of symbol.
// Every symbol, including the empty one, has at least one segment.
func Parse(symbol string) *Cursor {
	return &Cursor{rest: symbol}
}

// Next consumes and returns the next segment. The second result is false
// once all segments have been consumed.
func (c *Cursor) Next() (Segment, bool) {
	if c.done {
		return Segment{}, false
	}
	head, tail, found := strings.Cut(c.rest, ".")
	if found {
		c.rest = tail
	} else {
		c.rest = ""
		c.done = true
	}
	return classify(head), true
}

// Done reports whether all segments have been consumed.
func (c *Cursor) Done() bool {
	return c.done
}

// Remaining returns the unconsumed suffix of the symbol.
func (c *Cursor) Remaining() string {
	return c.rest
}

// Clone returns an independent copy of the cursor.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	return &clone
}

// Segments tokenizes a whole symbol.
func Segments(symbol string) []Segment {
	var segs []Segment
	c := Parse(symbol)
	for {
		seg, ok := c.Next()
		if !ok {
			return segs
		}
		segs = append(segs, seg)
	}
}

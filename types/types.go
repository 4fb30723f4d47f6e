// Package types is the reflected type model: data types with their memory
// layout, descriptor types, structural keys, member resolution and block
// merging.
package types

import (
	"fmt"
	"strings"

	"github.com/gogpu/spvreflect/spirv"
)

// Type is a reflected data type. The set of implementations is closed.
type Type interface {
	fmt.Stringer

	// Size returns the minimal number of bytes needed to hold a value of
	// the type. The second result is false for types without a memory
	// representation (opaque handles, booleans, multibind arrays).
	Size() (uint32, bool)

	typeNode()
}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarSint  ScalarKind = iota // Signed integer
	ScalarUint                    // Unsigned integer
	ScalarFloat                   // Floating point
	ScalarBool                    // Boolean
)

// ScalarType represents scalar types. Width is in bytes and is zero for
// booleans.
type ScalarType struct {
	Kind  ScalarKind
	Width uint8
}

// Bool returns the boolean scalar type.
func Bool() ScalarType { return ScalarType{Kind: ScalarBool} }

// Int returns an integer scalar type of the given byte width.
func Int(width uint8, signed bool) ScalarType {
	if signed {
		return ScalarType{Kind: ScalarSint, Width: width}
	}
	return ScalarType{Kind: ScalarUint, Width: width}
}

// Float returns a floating point scalar type of the given byte width.
func Float(width uint8) ScalarType { return ScalarType{Kind: ScalarFloat, Width: width} }

func (ScalarType) typeNode() {}

func (s ScalarType) String() string {
	bits := int(s.Width) * 8
	switch s.Kind {
	case ScalarSint:
		return fmt.Sprintf("i%d", bits)
	case ScalarUint:
		return fmt.Sprintf("u%d", bits)
	case ScalarFloat:
		return fmt.Sprintf("f%d", bits)
	default:
		return "bool"
	}
}

// Size implements Type.
func (s ScalarType) Size() (uint32, bool) {
	if s.Kind == ScalarBool {
		return 0, false
	}
	return uint32(s.Width), true
}

// VectorType represents vector types.
type VectorType struct {
	Scalar ScalarType
	Count  uint32
}

func (VectorType) typeNode() {}

func (v VectorType) String() string {
	return fmt.Sprintf("vec%d<%s>", v.Count, v.Scalar)
}

// Size implements Type.
func (v VectorType) Size() (uint32, bool) {
	n, ok := v.Scalar.Size()
	return n * v.Count, ok
}

// MatrixAxisOrder is the memory order of matrix elements.
type MatrixAxisOrder uint8

const (
	ColumnMajor MatrixAxisOrder = iota
	RowMajor
)

func (o MatrixAxisOrder) String() string {
	if o == RowMajor {
		return "row_major"
	}
	return "column_major"
}

// MatrixLayout is the memory layout of a matrix stored in a block.
type MatrixLayout struct {
	Stride    uint32
	AxisOrder MatrixAxisOrder
}

// MatrixType represents matrix types. Vector is the column type and Count
// the number of columns. Layout is nil unless the matrix is a block member.
type MatrixType struct {
	Vector VectorType
	Count  uint32
	Layout *MatrixLayout
}

func (MatrixType) typeNode() {}

// Decorate returns a copy of m with the given memory layout.
func (m MatrixType) Decorate(stride uint32, order MatrixAxisOrder) MatrixType {
	m.Layout = &MatrixLayout{Stride: stride, AxisOrder: order}
	return m
}

func (m MatrixType) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mat%dx%d<%s>", m.Count, m.Vector.Count, m.Vector.Scalar)
	if m.Layout != nil {
		fmt.Fprintf(&b, "{%s, stride=%d}", m.Layout.AxisOrder, m.Layout.Stride)
	}
	return b.String()
}

// Size implements Type. Without a layout the columns are assumed tightly
// packed.
func (m MatrixType) Size() (uint32, bool) {
	if m.Layout == nil {
		n, ok := m.Vector.Size()
		return n * m.Count, ok
	}
	if m.Layout.AxisOrder == RowMajor {
		return m.Layout.Stride * m.Vector.Count, true
	}
	return m.Layout.Stride * m.Count, true
}

// ArrayType represents array types. Count is zero for runtime-sized arrays.
// Stride is zero for arrays of descriptors (multibind arrays), which have no
// memory layout.
type ArrayType struct {
	Element Type
	Count   uint32
	Stride  uint32
}

func (ArrayType) typeNode() {}

// IsSized reports whether the array has a compile-time element count.
func (a ArrayType) IsSized() bool { return a.Count != 0 }

// IsMultibind reports whether the array is an array of descriptors.
func (a ArrayType) IsMultibind() bool { return a.Stride == 0 }

func (a ArrayType) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(a.Element.String())
	if a.IsSized() {
		fmt.Fprintf(&b, "; %d", a.Count)
	}
	if !a.IsMultibind() {
		fmt.Fprintf(&b, ", stride=%d", a.Stride)
	}
	b.WriteByte(']')
	return b.String()
}

// Size implements Type. Runtime-sized arrays report zero bytes.
func (a ArrayType) Size() (uint32, bool) {
	if a.IsMultibind() {
		return 0, false
	}
	return a.Stride * a.Count, true
}

// StructMember is a member of a block struct.
type StructMember struct {
	Name   string // empty if unnamed
	Offset uint32
	Type   Type
}

// StructType represents block struct types. Every member carries an
// explicit byte offset.
type StructType struct {
	Members []StructMember
}

func (StructType) typeNode() {}

// AddMember appends a member. Named members must have unique names.
func (s *StructType) AddMember(m StructMember) error {
	if m.Name != "" {
		if _, ok := s.Member(m.Name); ok {
			return spirv.ErrNameCollision
		}
	}
	s.Members = append(s.Members, m)
	return nil
}

// Member returns the member with the given name.
func (s StructType) Member(name string) (StructMember, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m, true
		}
	}
	return StructMember{}, false
}

func (s StructType) String() string {
	var b strings.Builder
	b.WriteString("struct {")
	for i, m := range s.Members {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %d: ", m.Offset)
		if m.Name != "" {
			b.WriteString(m.Name)
			b.WriteString(": ")
		}
		b.WriteString(m.Type.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Size implements Type. The size is the end of the furthest member.
func (s StructType) Size() (uint32, bool) {
	var end uint32
	for _, m := range s.Members {
		n, ok := m.Type.Size()
		if !ok {
			return 0, false
		}
		end = max(end, m.Offset+n)
	}
	return end, true
}

// SamplerType represents a standalone sampler.
type SamplerType struct{}

func (SamplerType) typeNode()            {}
func (SamplerType) String() string       { return "sampler" }
func (SamplerType) Size() (uint32, bool) { return 0, false }

// SubpassDataType represents an input attachment read in a subpass.
type SubpassDataType struct{}

func (SubpassDataType) typeNode()            {}
func (SubpassDataType) String() string       { return "subpass_data" }
func (SubpassDataType) Size() (uint32, bool) { return 0, false }

// Elem returns the innermost non-array type of t.
func Elem(t Type) Type {
	for {
		arr, ok := t.(ArrayType)
		if !ok {
			return t
		}
		t = arr.Element
	}
}

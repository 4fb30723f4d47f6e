package types

import (
	"math"

	"github.com/gogpu/spvreflect/sym"
)

// MemberResolution is the result of walking a symbol path into a type.
// Offset is the byte offset of the leaf from the start of the root type.
type MemberResolution struct {
	Offset uint32
	Type   Type
}

// Resolve consumes every remaining segment of c, stepping into struct
// members by name or declaration index and into array elements by index.
// It fails on empty segments, out-of-range indices, multibind arrays and
// scalar leaves with segments left over. Offsets past the 32-bit range
// fail as well.
func Resolve(t Type, c *sym.Cursor) (MemberResolution, bool) {
	res := MemberResolution{Type: t}
	var offset uint64
	for {
		seg, ok := c.Next()
		if !ok {
			res.Offset = uint32(offset)
			return res, true
		}
		switch cur := res.Type.(type) {
		case StructType:
			var member StructMember
			switch seg.Kind {
			case sym.SegmentIndex:
				if int(seg.Index) >= len(cur.Members) {
					return MemberResolution{}, false
				}
				member = cur.Members[seg.Index]
			case sym.SegmentName:
				if member, ok = cur.Member(seg.Name); !ok {
					return MemberResolution{}, false
				}
			default:
				return MemberResolution{}, false
			}
			offset += uint64(member.Offset)
			res.Type = member.Type
		case ArrayType:
			if seg.Kind != sym.SegmentIndex || cur.IsMultibind() {
				return MemberResolution{}, false
			}
			if cur.IsSized() && seg.Index >= cur.Count {
				return MemberResolution{}, false
			}
			offset += uint64(seg.Index) * uint64(cur.Stride)
			res.Type = cur.Element
		default:
			return MemberResolution{}, false
		}
		if offset > math.MaxUint32 {
			return MemberResolution{}, false
		}
	}
}

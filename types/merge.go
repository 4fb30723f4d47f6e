package types

import (
	"cmp"
	"slices"

	"github.com/gogpu/spvreflect/spirv"
)

// Merge combines the members of two block structs by offset and returns
// the union. Members at the same offset must agree: nested structs are
// merged recursively, other types must be structurally identical, and two
// non-empty names must match. Neither input is modified.
func (s StructType) Merge(other StructType) (StructType, error) {
	merged := StructType{Members: slices.Clone(s.Members)}
	for _, src := range other.Members {
		i := slices.IndexFunc(merged.Members, func(m StructMember) bool {
			return m.Offset == src.Offset
		})
		if i < 0 {
			if src.Name != "" {
				if _, ok := merged.Member(src.Name); ok {
					return StructType{}, spirv.ErrMismatchedManifest
				}
			}
			merged.Members = append(merged.Members, src)
			continue
		}

		dst := &merged.Members[i]
		if dst.Name != "" && src.Name != "" && dst.Name != src.Name {
			return StructType{}, spirv.ErrMismatchedManifest
		}
		if dst.Name == "" {
			dst.Name = src.Name
		}
		typ, err := mergeMemberType(dst.Type, src.Type)
		if err != nil {
			return StructType{}, err
		}
		dst.Type = typ
	}
	slices.SortStableFunc(merged.Members, func(a, b StructMember) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return merged, nil
}

func mergeMemberType(dst, src Type) (Type, error) {
	dstStruct, ok1 := dst.(StructType)
	srcStruct, ok2 := src.(StructType)
	if ok1 && ok2 {
		merged, err := dstStruct.Merge(srcStruct)
		if err != nil {
			return nil, err
		}
		return merged, nil
	}
	if Key(dst) != Key(src) {
		return nil, spirv.ErrMismatchedManifest
	}
	return dst, nil
}

package spvreflect

import (
	"cmp"
	"maps"
	"slices"

	"github.com/gogpu/spvreflect/spirv"
	"github.com/gogpu/spvreflect/sym"
	"github.com/gogpu/spvreflect/types"
)

// Manifest is the resource interface of one entry point. A Manifest is
// immutable once built and safe for concurrent reads.
type Manifest struct {
	inputs  map[InterfaceLocation]types.Type
	outputs map[InterfaceLocation]types.Type
	descs   map[DescriptorBinding]types.DescriptorType
	names   map[string]Locator
}

func newManifest() *Manifest {
	return &Manifest{
		inputs:  make(map[InterfaceLocation]types.Type),
		outputs: make(map[InterfaceLocation]types.Type),
		descs:   make(map[DescriptorBinding]types.DescriptorType),
		names:   make(map[string]Locator),
	}
}

// InterfaceResolution is an input or output variable.
type InterfaceResolution struct {
	Location InterfaceLocation
	Type     types.Type
}

// DescriptorResolution is a descriptor, plus the addressed member when a
// symbol named one and it could be resolved.
type DescriptorResolution struct {
	Binding DescriptorBinding
	Desc    types.DescriptorType
	Member  *types.MemberResolution
}

// GetInput returns the type of the input variable at loc.
func (m *Manifest) GetInput(loc InterfaceLocation) (types.Type, bool) {
	t, ok := m.inputs[loc]
	return t, ok
}

// GetOutput returns the type of the output variable at loc.
func (m *Manifest) GetOutput(loc InterfaceLocation) (types.Type, bool) {
	t, ok := m.outputs[loc]
	return t, ok
}

// GetDesc returns the descriptor at bind.
func (m *Manifest) GetDesc(bind DescriptorBinding) (types.DescriptorType, bool) {
	d, ok := m.descs[bind]
	return d, ok
}

// InputName returns the location of the input variable called name.
func (m *Manifest) InputName(name string) (InterfaceLocation, bool) {
	l, ok := m.names[name]
	if !ok || l.Kind != LocatorInput {
		return InterfaceLocation{}, false
	}
	return l.Interface, true
}

// OutputName returns the location of the output variable called name.
func (m *Manifest) OutputName(name string) (InterfaceLocation, bool) {
	l, ok := m.names[name]
	if !ok || l.Kind != LocatorOutput {
		return InterfaceLocation{}, false
	}
	return l.Interface, true
}

// DescName returns the binding of the descriptor called name.
func (m *Manifest) DescName(name string) (DescriptorBinding, bool) {
	l, ok := m.names[name]
	if !ok || l.Kind != LocatorDescriptor {
		return DescriptorBinding{}, false
	}
	return l.Binding, true
}

// NameOf returns the name of the variable at l, if it has one.
func (m *Manifest) NameOf(l Locator) (string, bool) {
	for name, target := range m.names {
		if target == l {
			return name, true
		}
	}
	return "", false
}

// ResolveInput resolves a symbol naming an input variable: a location
// index or a variable name. Interface variables have no members, so any
// further segment fails the resolution.
func (m *Manifest) ResolveInput(symbol string) (InterfaceResolution, bool) {
	return m.resolveInterface(m.inputs, LocatorInput, symbol)
}

// ResolveOutput is ResolveInput for output variables.
func (m *Manifest) ResolveOutput(symbol string) (InterfaceResolution, bool) {
	return m.resolveInterface(m.outputs, LocatorOutput, symbol)
}

func (m *Manifest) resolveInterface(table map[InterfaceLocation]types.Type, kind LocatorKind, symbol string) (InterfaceResolution, bool) {
	c := sym.Parse(symbol)
	seg, _ := c.Next()

	var loc InterfaceLocation
	switch seg.Kind {
	case sym.SegmentIndex:
		loc = InterfaceLocation{Location: Location(seg.Index)}
	case sym.SegmentName:
		l, ok := m.names[seg.Name]
		if !ok || l.Kind != kind {
			return InterfaceResolution{}, false
		}
		loc = l.Interface
	default:
		return InterfaceResolution{}, false
	}
	if !c.Done() {
		return InterfaceResolution{}, false
	}
	t, ok := table[loc]
	if !ok {
		return InterfaceResolution{}, false
	}
	return InterfaceResolution{Location: loc, Type: t}, true
}

// ResolveDesc resolves a symbol naming a descriptor and optionally one of
// its members. The descriptor is addressed by "set.bind", by name, or by
// an empty head for the push-constant block. Remaining segments are
// resolved by the descriptor type; if that fails the descriptor is still
// returned, with a nil Member.
func (m *Manifest) ResolveDesc(symbol string) (DescriptorResolution, bool) {
	c := sym.Parse(symbol)
	seg, _ := c.Next()

	var bind DescriptorBinding
	switch seg.Kind {
	case sym.SegmentIndex:
		next, ok := c.Next()
		if !ok || next.Kind != sym.SegmentIndex {
			return DescriptorResolution{}, false
		}
		bind = DescBind(seg.Index, next.Index)
	case sym.SegmentEmpty:
		bind = PushConstantBinding()
	case sym.SegmentName:
		l, ok := m.names[seg.Name]
		if !ok || l.Kind != LocatorDescriptor {
			return DescriptorResolution{}, false
		}
		bind = l.Binding
	}

	desc, ok := m.descs[bind]
	if !ok {
		return DescriptorResolution{}, false
	}
	res := DescriptorResolution{Binding: bind, Desc: desc}
	if member, ok := desc.Resolve(c); ok {
		res.Member = &member
	}
	return res, true
}

// Inputs returns all input variables ordered by location.
func (m *Manifest) Inputs() []InterfaceResolution {
	return sortedInterface(m.inputs)
}

// Outputs returns all output variables ordered by location.
func (m *Manifest) Outputs() []InterfaceResolution {
	return sortedInterface(m.outputs)
}

func sortedInterface(table map[InterfaceLocation]types.Type) []InterfaceResolution {
	out := make([]InterfaceResolution, 0, len(table))
	for loc, t := range table {
		out = append(out, InterfaceResolution{Location: loc, Type: t})
	}
	slices.SortFunc(out, func(a, b InterfaceResolution) int {
		if c := cmp.Compare(a.Location.Location, b.Location.Location); c != 0 {
			return c
		}
		return cmp.Compare(a.Location.Component, b.Location.Component)
	})
	return out
}

// Descs returns all descriptors ordered by set and binding, with the
// push-constant block last.
func (m *Manifest) Descs() []DescriptorResolution {
	out := make([]DescriptorResolution, 0, len(m.descs))
	for bind, desc := range m.descs {
		out = append(out, DescriptorResolution{Binding: bind, Desc: desc})
	}
	slices.SortFunc(out, func(a, b DescriptorResolution) int {
		return a.Binding.compare(b.Binding)
	})
	return out
}

// Merge combines the manifest of the next pipeline stage into m and
// returns the result. Neither manifest is modified.
//
// Inputs come from m and outputs from other. Descriptors are unioned; a
// binding present in both must hold structurally identical descriptors,
// except push-constant blocks, which are merged member by member. Only the
// names of surviving variables are kept: the output names of m and the
// input names of other are dropped with their variables. The kept names are
// unioned and a name present in both must refer to the same locator. Any
// conflict yields spirv.ErrMismatchedManifest.
func (m *Manifest) Merge(other *Manifest) (*Manifest, error) {
	merged := newManifest()
	maps.Copy(merged.inputs, m.inputs)
	maps.Copy(merged.outputs, other.outputs)
	maps.Copy(merged.descs, m.descs)

	for bind, src := range other.descs {
		dst, ok := merged.descs[bind]
		if !ok {
			merged.descs[bind] = src
			continue
		}
		if dstBlock, ok := dst.(types.PushConstantBlock); ok {
			srcBlock, ok := src.(types.PushConstantBlock)
			if !ok {
				return nil, spirv.ErrMismatchedManifest
			}
			block, err := dstBlock.Struct.Merge(srcBlock.Struct)
			if err != nil {
				return nil, err
			}
			merged.descs[bind] = types.PushConstantBlock{Struct: block}
			continue
		}
		if types.DescriptorHash(dst) != types.DescriptorHash(src) {
			return nil, spirv.ErrMismatchedManifest
		}
	}

	for name, l := range m.names {
		if l.Kind != LocatorOutput {
			merged.names[name] = l
		}
	}
	for name, l := range other.names {
		if l.Kind == LocatorInput {
			continue
		}
		if existing, ok := merged.names[name]; ok && existing != l {
			return nil, spirv.ErrMismatchedManifest
		}
		merged.names[name] = l
	}
	return merged, nil
}

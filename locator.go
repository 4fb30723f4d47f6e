package spvreflect

import "fmt"

// Location is the location of an interface variable.
type Location uint32

// Component is the first component used by an interface variable.
type Component uint32

// InterfaceLocation identifies an input or output interface variable.
type InterfaceLocation struct {
	Location  Location
	Component Component
}

func (l InterfaceLocation) String() string {
	return fmt.Sprintf("(loc=%d, comp=%d)", l.Location, l.Component)
}

// DescriptorBinding identifies a descriptor by set and binding, or the
// push-constant block of an entry point.
type DescriptorBinding struct {
	Set          uint32
	Bind         uint32
	PushConstant bool
}

// DescBind returns the binding of a descriptor in a descriptor set.
func DescBind(set, bind uint32) DescriptorBinding {
	return DescriptorBinding{Set: set, Bind: bind}
}

// PushConstantBinding returns the push-constant binding.
func PushConstantBinding() DescriptorBinding {
	return DescriptorBinding{PushConstant: true}
}

func (b DescriptorBinding) String() string {
	if b.PushConstant {
		return "(push_constant)"
	}
	return fmt.Sprintf("(set=%d, bind=%d)", b.Set, b.Bind)
}

// compare orders descriptor bindings by set then binding, with the
// push-constant binding last.
func (b DescriptorBinding) compare(other DescriptorBinding) int {
	switch {
	case b.PushConstant != other.PushConstant:
		if b.PushConstant {
			return 1
		}
		return -1
	case b.Set != other.Set:
		if b.Set < other.Set {
			return -1
		}
		return 1
	case b.Bind != other.Bind:
		if b.Bind < other.Bind {
			return -1
		}
		return 1
	}
	return 0
}

// LocatorKind tells which table of a manifest a Locator refers to.
type LocatorKind uint8

const (
	LocatorInput LocatorKind = iota
	LocatorOutput
	LocatorDescriptor
)

func (k LocatorKind) String() string {
	switch k {
	case LocatorInput:
		return "input"
	case LocatorOutput:
		return "output"
	default:
		return "descriptor"
	}
}

// Locator is the target of a variable name: an input or output location,
// or a descriptor binding.
type Locator struct {
	Kind      LocatorKind
	Interface InterfaceLocation
	Binding   DescriptorBinding
}

// InputLocator returns the locator of an input variable.
func InputLocator(loc InterfaceLocation) Locator {
	return Locator{Kind: LocatorInput, Interface: loc}
}

// OutputLocator returns the locator of an output variable.
func OutputLocator(loc InterfaceLocation) Locator {
	return Locator{Kind: LocatorOutput, Interface: loc}
}

// DescriptorLocator returns the locator of a descriptor.
func DescriptorLocator(bind DescriptorBinding) Locator {
	return Locator{Kind: LocatorDescriptor, Binding: bind}
}

func (l Locator) String() string {
	if l.Kind == LocatorDescriptor {
		return "descriptor" + l.Binding.String()
	}
	return l.Kind.String() + l.Interface.String()
}

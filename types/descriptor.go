package types

import (
	"fmt"

	"github.com/gogpu/spvreflect/sym"
)

// DescriptorType is the type of a resource bound through a descriptor set
// or push constants. The set of implementations is closed.
type DescriptorType interface {
	fmt.Stringer

	// Resolve walks the remaining segments of a symbol into the
	// descriptor's data. It fails for opaque descriptors and for empty
	// paths.
	Resolve(c *sym.Cursor) (MemberResolution, bool)

	descriptorNode()
}

// UniformBuffer is a uniform buffer block. BindCount is the number of
// bindings an array of blocks occupies; it is zero for runtime-sized arrays.
type UniformBuffer struct {
	BindCount uint32
	Struct    StructType
}

// StorageBuffer is a storage buffer block.
type StorageBuffer struct {
	BindCount uint32
	Struct    StructType
}

// PushConstantBlock is the push-constant block of an entry point.
type PushConstantBlock struct {
	Struct StructType
}

// ImageDescriptor is a sampled image, storage image or combined image
// sampler. Type is an ImageType or a multibind ArrayType of one.
type ImageDescriptor struct {
	Type Type
}

// SamplerDescriptor is a standalone sampler or array of samplers.
type SamplerDescriptor struct {
	BindCount uint32
}

// InputAttachment is a subpass input attachment.
type InputAttachment struct {
	Index uint32
}

func (UniformBuffer) descriptorNode()     {}
func (StorageBuffer) descriptorNode()     {}
func (PushConstantBlock) descriptorNode() {}
func (ImageDescriptor) descriptorNode()   {}
func (SamplerDescriptor) descriptorNode() {}
func (InputAttachment) descriptorNode()   {}

func (d UniformBuffer) String() string {
	return fmt.Sprintf("uniform_buffer[%d] %s", d.BindCount, d.Struct)
}

func (d StorageBuffer) String() string {
	return fmt.Sprintf("storage_buffer[%d] %s", d.BindCount, d.Struct)
}

func (d PushConstantBlock) String() string {
	return "push_constant " + d.Struct.String()
}

func (d ImageDescriptor) String() string {
	return d.Type.String()
}

func (d SamplerDescriptor) String() string {
	return fmt.Sprintf("sampler[%d]", d.BindCount)
}

func (d InputAttachment) String() string {
	return fmt.Sprintf("input_attachment(%d)", d.Index)
}

func (d UniformBuffer) Resolve(c *sym.Cursor) (MemberResolution, bool) {
	return resolveBlock(d.Struct, c)
}

func (d StorageBuffer) Resolve(c *sym.Cursor) (MemberResolution, bool) {
	return resolveBlock(d.Struct, c)
}

func (d PushConstantBlock) Resolve(c *sym.Cursor) (MemberResolution, bool) {
	return resolveBlock(d.Struct, c)
}

func (ImageDescriptor) Resolve(*sym.Cursor) (MemberResolution, bool) {
	return MemberResolution{}, false
}

func (SamplerDescriptor) Resolve(*sym.Cursor) (MemberResolution, bool) {
	return MemberResolution{}, false
}

func (InputAttachment) Resolve(*sym.Cursor) (MemberResolution, bool) {
	return MemberResolution{}, false
}

func resolveBlock(s StructType, c *sym.Cursor) (MemberResolution, bool) {
	if c.Done() {
		return MemberResolution{}, false
	}
	return Resolve(s, c)
}

// BlockOf returns the block struct of a buffer or push-constant
// descriptor.
func BlockOf(d DescriptorType) (StructType, bool) {
	switch d := d.(type) {
	case UniformBuffer:
		return d.Struct, true
	case StorageBuffer:
		return d.Struct, true
	case PushConstantBlock:
		return d.Struct, true
	default:
		return StructType{}, false
	}
}

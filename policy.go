package spvreflect

import (
	"slices"

	"github.com/gogpu/spvreflect/spirv"
	"github.com/gogpu/spvreflect/types"
)

// shape is the coarse form of a variable's pointee type consulted by the
// storage class policy.
type shape uint8

const (
	shapeOther shape = iota
	shapeStruct
	shapeStructArray
	shapeImage
	shapeImageArray
	shapeSampler
	shapeSamplerArray
	shapeSubpassData
)

func shapeOf(t types.Type) shape {
	_, isArray := t.(types.ArrayType)
	switch types.Elem(t).(type) {
	case types.StructType:
		if isArray {
			return shapeStructArray
		}
		return shapeStruct
	case types.ImageType:
		if isArray {
			return shapeImageArray
		}
		return shapeImage
	case types.SamplerType:
		if isArray {
			return shapeSamplerArray
		}
		return shapeSampler
	case types.SubpassDataType:
		if !isArray {
			return shapeSubpassData
		}
	}
	return shapeOther
}

type policyAction uint8

const (
	actionIgnore policyAction = iota
	actionClassify
	actionReject
)

type varDecl struct {
	id     uint32
	typeID uint32
	typ    types.Type
	class  spirv.StorageClass
}

// policyRule applies to variables of a storage class whose pointee has one
// of the listed shapes. A nil shape list matches any shape.
type policyRule struct {
	class  spirv.StorageClass
	shapes []shape
	action policyAction
	build  func(*reflector, varDecl) (variable, error)
	err    error
}

// policy is consulted top to bottom; the first matching rule wins.
// Storage classes without a rule are ignored.
var policy = []policyRule{
	{class: spirv.StorageClassInput, action: actionClassify, build: interfaceVariable},
	{class: spirv.StorageClassOutput, action: actionClassify, build: interfaceVariable},

	{class: spirv.StorageClassUniform, shapes: []shape{shapeStruct, shapeStructArray}, action: actionClassify, build: uniformBuffer},
	{class: spirv.StorageClassUniform, action: actionReject, err: spirv.ErrTypeNotFound},

	{class: spirv.StorageClassStorageBuffer, shapes: []shape{shapeStruct, shapeStructArray}, action: actionClassify, build: storageBuffer},
	{class: spirv.StorageClassStorageBuffer, action: actionReject, err: spirv.ErrTypeNotFound},

	{class: spirv.StorageClassPushConstant, shapes: []shape{shapeStruct}, action: actionClassify, build: pushConstantBlock},
	{class: spirv.StorageClassPushConstant, action: actionReject, err: spirv.ErrTypeNotFound},

	{class: spirv.StorageClassUniformConstant, shapes: []shape{shapeImage, shapeImageArray}, action: actionClassify, build: imageDescriptor},
	{class: spirv.StorageClassUniformConstant, shapes: []shape{shapeSampler, shapeSamplerArray}, action: actionClassify, build: samplerDescriptor},
	{class: spirv.StorageClassUniformConstant, shapes: []shape{shapeSubpassData}, action: actionClassify, build: inputAttachment},
	{class: spirv.StorageClassUniformConstant, action: actionReject, err: spirv.ErrUnsupportedType},
}

func lookupPolicy(class spirv.StorageClass, s shape) policyRule {
	for _, rule := range policy {
		if rule.class != class {
			continue
		}
		if rule.shapes == nil || slices.Contains(rule.shapes, s) {
			return rule
		}
	}
	return policyRule{class: class, action: actionIgnore}
}

func interfaceVariable(r *reflector, v varDecl) (variable, error) {
	// Entries key at component 0; the Component decoration only packs
	// several variables into one location and is not part of the key.
	location, _ := r.decoU32(v.id, spirv.DecorationLocation)
	kind := varInput
	if v.class == spirv.StorageClassOutput {
		kind = varOutput
	}
	return variable{
		kind:     kind,
		location: InterfaceLocation{Location: Location(location)},
		typ:      v.typ,
	}, nil
}

// descriptorBinding returns the binding of a descriptor variable,
// defaulting to set 0, binding 0.
func (r *reflector) descriptorBinding(id uint32) DescriptorBinding {
	set, _ := r.decoU32(id, spirv.DecorationDescriptorSet)
	bind, _ := r.decoU32(id, spirv.DecorationBinding)
	return DescBind(set, bind)
}

// bindCount is the number of bindings a descriptor of type t occupies.
// Runtime-sized arrays occupy an unknown number, reported as zero.
func bindCount(t types.Type) uint32 {
	n := uint32(1)
	for {
		arr, ok := t.(types.ArrayType)
		if !ok {
			return n
		}
		n *= arr.Count
		t = arr.Element
	}
}

// blockTypeID follows array element ids down to the block struct.
func (r *reflector) blockTypeID(id uint32) uint32 {
	for {
		elem, ok := r.elements[id]
		if !ok {
			return id
		}
		id = elem
	}
}

func uniformBuffer(r *reflector, v varDecl) (variable, error) {
	block := types.Elem(v.typ).(types.StructType)
	count := bindCount(v.typ)
	var desc types.DescriptorType = types.UniformBuffer{BindCount: count, Struct: block}
	structID := r.blockTypeID(v.typeID)
	if r.hasDeco(structID, spirv.DecorationBufferBlock) || r.hasDeco(v.typeID, spirv.DecorationBufferBlock) {
		desc = types.StorageBuffer{BindCount: count, Struct: block}
	}
	return variable{kind: varDescriptor, binding: r.descriptorBinding(v.id), desc: desc}, nil
}

func storageBuffer(r *reflector, v varDecl) (variable, error) {
	desc := types.StorageBuffer{
		BindCount: bindCount(v.typ),
		Struct:    types.Elem(v.typ).(types.StructType),
	}
	return variable{kind: varDescriptor, binding: r.descriptorBinding(v.id), desc: desc}, nil
}

func pushConstantBlock(_ *reflector, v varDecl) (variable, error) {
	desc := types.PushConstantBlock{Struct: v.typ.(types.StructType)}
	return variable{kind: varDescriptor, binding: PushConstantBinding(), desc: desc}, nil
}

func imageDescriptor(r *reflector, v varDecl) (variable, error) {
	desc := types.ImageDescriptor{Type: v.typ}
	return variable{kind: varDescriptor, binding: r.descriptorBinding(v.id), desc: desc}, nil
}

func samplerDescriptor(r *reflector, v varDecl) (variable, error) {
	desc := types.SamplerDescriptor{BindCount: bindCount(v.typ)}
	return variable{kind: varDescriptor, binding: r.descriptorBinding(v.id), desc: desc}, nil
}

func inputAttachment(r *reflector, v varDecl) (variable, error) {
	index, ok := r.decoU32(v.id, spirv.DecorationInputAttachmentIndex)
	if !ok {
		return variable{}, spirv.ErrMissingDecoration
	}
	desc := types.InputAttachment{Index: index}
	return variable{kind: varDescriptor, binding: r.descriptorBinding(v.id), desc: desc}, nil
}

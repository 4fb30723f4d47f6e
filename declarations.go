package spvreflect

import (
	"github.com/gogpu/spvreflect/spirv"
	"github.com/gogpu/spvreflect/types"
)

// populateDeclarations registers types, constants and global variables.
// Every type is built from already registered dependencies.
func (r *reflector) populateDeclarations() error {
	return r.scan(inSection(sectionDeclaration), func(inst spirv.Instruction) error {
		switch op := inst.Opcode; {
		case op == spirv.OpVariable:
			return r.populateVariable(inst)
		case isTypeOp(op):
			return r.populateType(inst)
		case op == spirv.OpConstant:
			return r.populateConstant(inst)
		case isConstantOp(op):
			// Other constants and specialization constants only claim
			// their result id.
			if len(inst.Words) < 2 {
				return spirv.ErrInstrTooShort
			}
			return r.declare(inst.Words[1])
		}
		// OpUndef, OpLine, OpNoLine and non-semantic OpExtInst.
		return nil
	})
}

// declare claims a result id.
func (r *reflector) declare(id uint32) error {
	if r.declared[id] {
		return spirv.ErrIDCollision
	}
	r.declared[id] = true
	return nil
}

func (r *reflector) populateType(inst spirv.Instruction) error {
	if inst.Opcode == spirv.OpTypeImage {
		op, err := spirv.DecodeTypeImage(inst)
		if err != nil {
			return err
		}
		if err := r.declare(op.Result); err != nil {
			return err
		}
		t, err := imageType(op)
		if err != nil {
			return err
		}
		r.types[op.Result] = t
		return nil
	}

	if inst.Opcode == spirv.OpTypeForwardPointer {
		return nil
	}
	op, err := spirv.DecodeType(inst)
	if err != nil {
		return err
	}
	if err := r.declare(op.Result); err != nil {
		return err
	}

	var t types.Type
	switch inst.Opcode {
	case spirv.OpTypeVoid, spirv.OpTypeFunction:
		return nil
	case spirv.OpTypePointer:
		r.pointers[op.Result] = op.Element
		return nil
	case spirv.OpTypeBool:
		t = types.Bool()
	case spirv.OpTypeInt:
		t = types.Int(uint8(op.Width>>3), op.Signed)
	case spirv.OpTypeFloat:
		t = types.Float(uint8(op.Width >> 3))
	case spirv.OpTypeVector:
		scalar, ok := r.types[op.Element].(types.ScalarType)
		if !ok {
			return spirv.ErrTypeNotFound
		}
		t = types.VectorType{Scalar: scalar, Count: op.Count}
	case spirv.OpTypeMatrix:
		vector, ok := r.types[op.Element].(types.VectorType)
		if !ok {
			return spirv.ErrTypeNotFound
		}
		t = types.MatrixType{Vector: vector, Count: op.Count}
	case spirv.OpTypeSampler:
		t = types.SamplerType{}
	case spirv.OpTypeSampledImage:
		image, ok := r.types[op.Element].(types.ImageType)
		if !ok {
			return spirv.ErrTypeNotFound
		}
		t = image
	case spirv.OpTypeArray:
		if t, err = r.arrayType(op); err != nil {
			return err
		}
	case spirv.OpTypeRuntimeArray:
		if t, err = r.runtimeArrayType(op); err != nil {
			return err
		}
	case spirv.OpTypeStruct:
		s, ok, err := r.structType(op)
		if err != nil || !ok {
			return err
		}
		t = s
	default:
		return spirv.ErrUnsupportedType
	}
	r.types[op.Result] = t
	return nil
}

func imageType(op spirv.TypeImageOp) (types.Type, error) {
	if op.Dim == spirv.DimSubpassData {
		return types.SubpassDataType{}, nil
	}
	unit, err := types.NewImageUnitFormat(op.Sampled, op.Depth, op.Format)
	if err != nil {
		return nil, err
	}
	arrangement, err := types.NewImageArrangement(op.Dim, op.Arrayed, op.Multisampled)
	if err != nil {
		return nil, err
	}
	return types.ImageType{Unit: unit, Arrangement: arrangement}, nil
}

// arrayType builds a fixed-length array. The length must be a registered
// 32-bit unsigned integer constant. Arrays without a stride are arrays of
// descriptors.
func (r *reflector) arrayType(op spirv.TypeOp) (types.Type, error) {
	elem, ok := r.types[op.Element]
	if !ok {
		return nil, spirv.ErrTypeNotFound
	}
	length, ok := r.constants[op.Length]
	if !ok {
		return nil, spirv.ErrConstNotFound
	}
	scalar, ok := r.types[length.typeID].(types.ScalarType)
	if !ok || scalar != types.Int(4, false) || len(length.value) == 0 {
		return nil, spirv.ErrConstNotFound
	}
	stride, _ := r.decoU32(op.Result, spirv.DecorationArrayStride)
	r.elements[op.Result] = op.Element
	return types.ArrayType{Element: elem, Count: length.value[0], Stride: stride}, nil
}

func (r *reflector) runtimeArrayType(op spirv.TypeOp) (types.Type, error) {
	elem, ok := r.types[op.Element]
	if !ok {
		return nil, spirv.ErrTypeNotFound
	}
	stride, ok := r.decoU32(op.Result, spirv.DecorationArrayStride)
	if !ok {
		return nil, spirv.ErrMissingDecoration
	}
	r.elements[op.Result] = op.Element
	return types.ArrayType{Element: elem, Stride: stride}, nil
}

// structType builds a block struct. Structs with a member lacking an
// Offset decoration are stage interface blocks; they report ok == false and
// are left unregistered.
func (r *reflector) structType(op spirv.TypeOp) (types.StructType, bool, error) {
	var s types.StructType
	for i, memberID := range op.Members {
		member := uint32(i)
		offset, ok := r.memberDecoU32(op.Result, member, spirv.DecorationOffset)
		if !ok {
			return types.StructType{}, false, nil
		}
		t, err := r.memberType(op.Result, member, memberID)
		if err != nil {
			return types.StructType{}, false, err
		}
		err = s.AddMember(types.StructMember{
			Name:   r.memberName(op.Result, member),
			Offset: offset,
			Type:   t,
		})
		if err != nil {
			return types.StructType{}, false, err
		}
	}
	return s, true, nil
}

// memberType resolves the type of a struct member. A matrix member, or the
// innermost element of an array-of-matrix member, takes its stride and axis
// order from the member decorations.
func (r *reflector) memberType(structID, member, typeID uint32) (types.Type, error) {
	t, ok := r.types[typeID]
	if !ok {
		return nil, spirv.ErrTypeNotFound
	}
	if _, ok := types.Elem(t).(types.MatrixType); !ok {
		return t, nil
	}

	stride, ok := r.memberDecoU32(structID, member, spirv.DecorationMatrixStride)
	if !ok {
		return nil, spirv.ErrMissingDecoration
	}
	rowMajor := r.hasMemberDeco(structID, member, spirv.DecorationRowMajor)
	colMajor := r.hasMemberDeco(structID, member, spirv.DecorationColMajor)
	var order types.MatrixAxisOrder
	switch {
	case rowMajor && !colMajor:
		order = types.RowMajor
	case colMajor && !rowMajor:
		order = types.ColumnMajor
	default:
		return nil, spirv.ErrMatrixAxisOrder
	}
	return decorateMatrix(t, stride, order), nil
}

func decorateMatrix(t types.Type, stride uint32, order types.MatrixAxisOrder) types.Type {
	switch t := t.(type) {
	case types.ArrayType:
		t.Element = decorateMatrix(t.Element, stride, order)
		return t
	case types.MatrixType:
		return t.Decorate(stride, order)
	}
	return t
}

func (r *reflector) populateConstant(inst spirv.Instruction) error {
	op, err := spirv.DecodeConstant(inst)
	if err != nil {
		return err
	}
	if err := r.declare(op.Result); err != nil {
		return err
	}
	r.constants[op.Result] = constant{typeID: op.ResultType, value: op.Value}
	return nil
}

// populateVariable classifies a global variable with the storage class
// policy. Variables whose pointee is not a registered type are usually
// stage interface blocks and are skipped.
func (r *reflector) populateVariable(inst spirv.Instruction) error {
	op, err := spirv.DecodeVariable(inst)
	if err != nil {
		return err
	}
	if err := r.declare(op.Result); err != nil {
		return err
	}
	pointee, ok := r.pointers[op.ResultType]
	if !ok {
		return nil
	}
	t, ok := r.types[pointee]
	if !ok {
		return nil
	}
	if r.hasDeco(op.Result, spirv.DecorationBuiltIn) && !r.opts.IncludeBuiltins {
		return nil
	}

	decl := varDecl{id: op.Result, typeID: pointee, typ: t, class: op.StorageClass}
	rule := lookupPolicy(decl.class, shapeOf(t))
	switch rule.action {
	case actionClassify:
		v, err := rule.build(r, decl)
		if err != nil {
			return err
		}
		r.vars[op.Result] = v
	case actionReject:
		return rule.err
	}
	return nil
}

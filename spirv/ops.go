package spirv

// minOperands lists the minimum operand word count of every opcode with a
// typed view. String operands count as one word.
var minOperands = map[OpCode]int{
	OpEntryPoint:             3,
	OpExecutionMode:          2,
	OpExecutionModeID:        2,
	OpName:                   2,
	OpMemberName:             3,
	OpDecorate:               2,
	OpDecorateID:             2,
	OpDecorateString:         2,
	OpMemberDecorate:         3,
	OpMemberDecorateString:   3,
	OpTypeVoid:               1,
	OpTypeBool:               1,
	OpTypeInt:                3,
	OpTypeFloat:              2,
	OpTypeVector:             3,
	OpTypeMatrix:             3,
	OpTypeImage:              8,
	OpTypeSampler:            1,
	OpTypeSampledImage:       2,
	OpTypeArray:              3,
	OpTypeRuntimeArray:       2,
	OpTypeStruct:             1,
	OpTypePointer:            3,
	OpTypeFunction:           2,
	OpConstant:               3,
	OpVariable:               3,
	OpFunction:               4,
	OpFunctionCall:           3,
	OpLoad:                   3,
	OpStore:                  2,
	OpAccessChain:            3,
	OpInBoundsAccessChain:    3,
	OpPtrAccessChain:         3,
	OpInBoundsPtrAccessChain: 3,
}

// operands reads typed operands from an instruction in order.
type operands struct {
	words []uint32
	pos   int
}

func newOperands(inst Instruction) (*operands, error) {
	if len(inst.Words) < minOperands[inst.Opcode] {
		return nil, ErrInstrTooShort
	}
	return &operands{words: inst.Words}, nil
}

func (o *operands) word() (uint32, error) {
	if o.pos >= len(o.words) {
		return 0, ErrInstrTooShort
	}
	w := o.words[o.pos]
	o.pos++
	return w, nil
}

func (o *operands) flag() (bool, error) {
	w, err := o.word()
	if err != nil {
		return false, err
	}
	switch w {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrUnencodedEnum
	}
}

// str reads a nul-terminated UTF-8 literal packed little-endian into words.
func (o *operands) str() (string, error) {
	buf := make([]byte, 0, 16)
	for o.pos < len(o.words) {
		w := o.words[o.pos]
		o.pos++
		for i := 0; i < 4; i++ {
			b := byte(w >> (8 * i))
			if b == 0 {
				return string(buf), nil
			}
			buf = append(buf, b)
		}
	}
	return "", ErrStrNotTerminated
}

func (o *operands) rest() []uint32 {
	r := o.words[o.pos:]
	o.pos = len(o.words)
	return r
}

// EntryPointOp is a decoded OpEntryPoint.
type EntryPointOp struct {
	ExecutionModel ExecutionModel
	Function       uint32
	Name           string
	Interface      []uint32
}

// DecodeEntryPoint decodes an OpEntryPoint instruction.
func DecodeEntryPoint(inst Instruction) (EntryPointOp, error) {
	var op EntryPointOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	model, _ := o.word()
	op.ExecutionModel = ExecutionModel(model)
	if !op.ExecutionModel.Valid() {
		return op, ErrUnencodedEnum
	}
	op.Function, _ = o.word()
	if op.Name, err = o.str(); err != nil {
		return op, err
	}
	op.Interface = o.rest()
	return op, nil
}

// ExecutionModeOp is a decoded OpExecutionMode or OpExecutionModeId.
type ExecutionModeOp struct {
	EntryPoint uint32
	Mode       ExecutionMode
	Operands   []uint32
}

// DecodeExecutionMode decodes an OpExecutionMode or OpExecutionModeId
// instruction.
func DecodeExecutionMode(inst Instruction) (ExecutionModeOp, error) {
	var op ExecutionModeOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.EntryPoint, _ = o.word()
	mode, _ := o.word()
	op.Mode = ExecutionMode(mode)
	op.Operands = o.rest()
	return op, nil
}

// NameOp is a decoded OpName or OpMemberName. Member is only meaningful
// when IsMember is set.
type NameOp struct {
	Target   uint32
	Member   uint32
	IsMember bool
	Name     string
}

// DecodeName decodes an OpName or OpMemberName instruction.
func DecodeName(inst Instruction) (NameOp, error) {
	var op NameOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.Target, _ = o.word()
	if inst.Opcode == OpMemberName {
		op.IsMember = true
		op.Member, _ = o.word()
	}
	op.Name, err = o.str()
	return op, err
}

// DecorateOp is a decoded decoration instruction. Params holds the raw
// literal words following the decoration.
type DecorateOp struct {
	Target     uint32
	Member     uint32
	IsMember   bool
	Decoration Decoration
	Params     []uint32
}

// DecodeDecorate decodes OpDecorate, OpDecorateId, OpDecorateString,
// OpMemberDecorate and OpMemberDecorateString instructions.
func DecodeDecorate(inst Instruction) (DecorateOp, error) {
	var op DecorateOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.Target, _ = o.word()
	if inst.Opcode == OpMemberDecorate || inst.Opcode == OpMemberDecorateString {
		op.IsMember = true
		op.Member, _ = o.word()
	}
	deco, err := o.word()
	if err != nil {
		return op, err
	}
	op.Decoration = Decoration(deco)
	op.Params = o.rest()
	return op, nil
}

// TypeOp is a decoded type declaration. Which fields are set depends on the
// opcode:
//
//	OpTypeBool, OpTypeSampler      Result
//	OpTypeInt                      Result, Width, Signed
//	OpTypeFloat                    Result, Width
//	OpTypeVector, OpTypeMatrix     Result, Element, Count
//	OpTypeSampledImage             Result, Element
//	OpTypeArray                    Result, Element, Length (constant id)
//	OpTypeRuntimeArray             Result, Element
//	OpTypeStruct                   Result, Members
//	OpTypePointer                  Result, StorageClass, Element
type TypeOp struct {
	Result       uint32
	Width        uint32
	Signed       bool
	Element      uint32
	Count        uint32
	Length       uint32
	Members      []uint32
	StorageClass StorageClass
}

// DecodeType decodes the scalar, composite and pointer type declarations.
// Image types have their own view, see DecodeTypeImage.
func DecodeType(inst Instruction) (TypeOp, error) {
	var op TypeOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.Result, _ = o.word()
	switch inst.Opcode {
	case OpTypeInt:
		op.Width, _ = o.word()
		if op.Signed, err = o.flag(); err != nil {
			return op, err
		}
	case OpTypeFloat:
		op.Width, _ = o.word()
	case OpTypeVector, OpTypeMatrix:
		op.Element, _ = o.word()
		op.Count, _ = o.word()
	case OpTypeSampledImage, OpTypeRuntimeArray:
		op.Element, _ = o.word()
	case OpTypeArray:
		op.Element, _ = o.word()
		op.Length, _ = o.word()
	case OpTypeStruct:
		op.Members = o.rest()
	case OpTypePointer:
		class, _ := o.word()
		op.StorageClass = StorageClass(class)
		if !op.StorageClass.Valid() {
			return op, ErrUnencodedEnum
		}
		op.Element, _ = o.word()
	}
	return op, nil
}

// TypeImageOp is a decoded OpTypeImage.
type TypeImageOp struct {
	Result       uint32
	SampledType  uint32
	Dim          Dim
	Depth        uint32 // 0 no depth, 1 depth, 2 unknown
	Arrayed      bool
	Multisampled bool
	Sampled      uint32 // 0 unknown, 1 sampled, 2 storage
	Format       ImageFormat
}

// DecodeTypeImage decodes an OpTypeImage instruction.
func DecodeTypeImage(inst Instruction) (TypeImageOp, error) {
	var op TypeImageOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.Result, _ = o.word()
	op.SampledType, _ = o.word()
	dim, _ := o.word()
	op.Dim = Dim(dim)
	if !op.Dim.Valid() {
		return op, ErrUnencodedEnum
	}
	op.Depth, _ = o.word()
	if op.Arrayed, err = o.flag(); err != nil {
		return op, err
	}
	if op.Multisampled, err = o.flag(); err != nil {
		return op, err
	}
	op.Sampled, _ = o.word()
	format, _ := o.word()
	op.Format = ImageFormat(format)
	if op.Depth > 2 || op.Sampled > 2 || !op.Format.Valid() {
		return op, ErrUnencodedEnum
	}
	return op, nil
}

// ConstantOp is a decoded OpConstant.
type ConstantOp struct {
	ResultType uint32
	Result     uint32
	Value      []uint32
}

// DecodeConstant decodes an OpConstant instruction.
func DecodeConstant(inst Instruction) (ConstantOp, error) {
	var op ConstantOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.ResultType, _ = o.word()
	op.Result, _ = o.word()
	op.Value = o.rest()
	return op, nil
}

// VariableOp is a decoded OpVariable.
type VariableOp struct {
	ResultType   uint32
	Result       uint32
	StorageClass StorageClass
}

// DecodeVariable decodes an OpVariable instruction. The optional
// initializer is not reported.
func DecodeVariable(inst Instruction) (VariableOp, error) {
	var op VariableOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.ResultType, _ = o.word()
	op.Result, _ = o.word()
	class, _ := o.word()
	op.StorageClass = StorageClass(class)
	if !op.StorageClass.Valid() {
		return op, ErrUnencodedEnum
	}
	return op, nil
}

// FunctionOp is a decoded OpFunction.
type FunctionOp struct {
	ResultType   uint32
	Result       uint32
	Control      FunctionControl
	FunctionType uint32
}

// DecodeFunction decodes an OpFunction instruction.
func DecodeFunction(inst Instruction) (FunctionOp, error) {
	var op FunctionOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.ResultType, _ = o.word()
	op.Result, _ = o.word()
	control, _ := o.word()
	op.Control = FunctionControl(control)
	op.FunctionType, _ = o.word()
	return op, nil
}

// FunctionCallOp is a decoded OpFunctionCall.
type FunctionCallOp struct {
	ResultType uint32
	Result     uint32
	Function   uint32
	Arguments  []uint32
}

// DecodeFunctionCall decodes an OpFunctionCall instruction.
func DecodeFunctionCall(inst Instruction) (FunctionCallOp, error) {
	var op FunctionCallOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.ResultType, _ = o.word()
	op.Result, _ = o.word()
	op.Function, _ = o.word()
	op.Arguments = o.rest()
	return op, nil
}

// MemoryOp is a decoded OpLoad or OpStore. For loads Result is the loaded
// value; for stores Object is the stored value.
type MemoryOp struct {
	Result  uint32
	Pointer uint32
	Object  uint32
}

// DecodeMemory decodes an OpLoad or OpStore instruction.
func DecodeMemory(inst Instruction) (MemoryOp, error) {
	var op MemoryOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	if inst.Opcode == OpStore {
		op.Pointer, _ = o.word()
		op.Object, _ = o.word()
		return op, nil
	}
	_, _ = o.word()
	op.Result, _ = o.word()
	op.Pointer, _ = o.word()
	return op, nil
}

// AccessChainOp is a decoded OpAccessChain or OpInBoundsAccessChain.
type AccessChainOp struct {
	ResultType uint32
	Result     uint32
	Base       uint32
	Indexes    []uint32
}

// DecodeAccessChain decodes OpAccessChain, OpInBoundsAccessChain and their
// Ptr variants. For the Ptr variants the element operand is Indexes[0].
func DecodeAccessChain(inst Instruction) (AccessChainOp, error) {
	var op AccessChainOp
	o, err := newOperands(inst)
	if err != nil {
		return op, err
	}
	op.ResultType, _ = o.word()
	op.Result, _ = o.word()
	op.Base, _ = o.word()
	op.Indexes = o.rest()
	return op, nil
}

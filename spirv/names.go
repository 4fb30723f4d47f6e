package spirv

import "fmt"

var opcodeNames = map[OpCode]string{
	0: "OpNop", 1: "OpUndef", 2: "OpSourceContinued", 3: "OpSource",
	4: "OpSourceExtension", 5: "OpName", 6: "OpMemberName", 7: "OpString",
	8: "OpLine", 10: "OpExtension", 11: "OpExtInstImport", 12: "OpExtInst",
	14: "OpMemoryModel", 15: "OpEntryPoint", 16: "OpExecutionMode",
	17: "OpCapability", 19: "OpTypeVoid", 20: "OpTypeBool",
	21: "OpTypeInt", 22: "OpTypeFloat", 23: "OpTypeVector",
	24: "OpTypeMatrix", 25: "OpTypeImage", 26: "OpTypeSampler",
	27: "OpTypeSampledImage", 28: "OpTypeArray", 29: "OpTypeRuntimeArray",
	30: "OpTypeStruct", 31: "OpTypeOpaque", 32: "OpTypePointer",
	33: "OpTypeFunction", 34: "OpTypeEvent", 35: "OpTypeDeviceEvent",
	36: "OpTypeReserveId", 37: "OpTypeQueue", 38: "OpTypePipe",
	39: "OpTypeForwardPointer", 41: "OpConstantTrue", 42: "OpConstantFalse",
	43: "OpConstant", 44: "OpConstantComposite", 45: "OpConstantSampler",
	46: "OpConstantNull", 48: "OpSpecConstantTrue", 49: "OpSpecConstantFalse",
	50: "OpSpecConstant", 51: "OpSpecConstantComposite", 52: "OpSpecConstantOp",
	54: "OpFunction", 55: "OpFunctionParameter", 56: "OpFunctionEnd",
	57: "OpFunctionCall", 59: "OpVariable", 60: "OpImageTexelPointer",
	61: "OpLoad", 62: "OpStore", 63: "OpCopyMemory", 64: "OpCopyMemorySized",
	65: "OpAccessChain", 66: "OpInBoundsAccessChain", 67: "OpPtrAccessChain",
	68: "OpArrayLength", 70: "OpInBoundsPtrAccessChain", 71: "OpDecorate", 72: "OpMemberDecorate",
	73: "OpDecorationGroup", 74: "OpGroupDecorate", 75: "OpGroupMemberDecorate",
	77: "OpVectorExtractDynamic", 78: "OpVectorInsertDynamic",
	79: "OpVectorShuffle", 80: "OpCompositeConstruct", 81: "OpCompositeExtract",
	82: "OpCompositeInsert", 83: "OpCopyObject", 84: "OpTranspose",
	86: "OpSampledImage", 87: "OpImageSampleImplicitLod",
	88: "OpImageSampleExplicitLod", 95: "OpImageFetch",
	98: "OpImageRead", 99: "OpImageWrite", 100: "OpImage",
	109: "OpConvertFToU", 110: "OpConvertFToS", 111: "OpConvertSToF",
	112: "OpConvertUToF", 124: "OpBitcast",
	126: "OpSNegate", 127: "OpFNegate", 128: "OpIAdd", 129: "OpFAdd",
	130: "OpISub", 131: "OpFSub", 132: "OpIMul", 133: "OpFMul",
	134: "OpUDiv", 135: "OpSDiv", 136: "OpFDiv",
	142: "OpVectorTimesScalar", 143: "OpMatrixTimesScalar",
	144: "OpVectorTimesMatrix", 145: "OpMatrixTimesVector",
	146: "OpMatrixTimesMatrix", 148: "OpDot",
	170: "OpSignBitSet", 179: "OpSelect", 180: "OpIEqual", 181: "OpINotEqual",
	186: "OpULessThan", 187: "OpSLessThan",
	184: "OpUGreaterThanEqual", 190: "OpFOrdEqual",
	197: "OpBitwiseOr", 199: "OpBitwiseAnd", 205: "OpBitCount",
	227: "OpAtomicLoad", 228: "OpAtomicStore", 229: "OpAtomicExchange",
	230: "OpAtomicCompareExchange", 231: "OpAtomicCompareExchangeWeak",
	232: "OpAtomicIIncrement", 233: "OpAtomicIDecrement", 234: "OpAtomicIAdd",
	235: "OpAtomicISub", 236: "OpAtomicSMin", 237: "OpAtomicUMin",
	238: "OpAtomicSMax", 239: "OpAtomicUMax", 240: "OpAtomicAnd",
	241: "OpAtomicOr", 242: "OpAtomicXor",
	245: "OpPhi", 246: "OpLoopMerge", 247: "OpSelectionMerge",
	248: "OpLabel", 249: "OpBranch", 250: "OpBranchConditional",
	251: "OpSwitch", 252: "OpKill", 253: "OpReturn", 254: "OpReturnValue",
	255: "OpUnreachable", 317: "OpNoLine", 330: "OpModuleProcessed",
	331: "OpExecutionModeId", 332: "OpDecorateId",
	4472: "OpTypeRayQueryKHR", 5341: "OpTypeAccelerationStructureKHR",
	5632: "OpDecorateString", 5633: "OpMemberDecorateString",
}

// String returns the opcode mnemonic, or a numeric placeholder for opcodes
// without a registered name.
func (op OpCode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

var executionModelNames = map[ExecutionModel]string{
	ExecutionModelVertex:                 "Vertex",
	ExecutionModelTessellationControl:    "TessellationControl",
	ExecutionModelTessellationEvaluation: "TessellationEvaluation",
	ExecutionModelGeometry:               "Geometry",
	ExecutionModelFragment:               "Fragment",
	ExecutionModelGLCompute:              "GLCompute",
	ExecutionModelKernel:                 "Kernel",
	ExecutionModelTaskNV:                 "TaskNV",
	ExecutionModelMeshNV:                 "MeshNV",
	ExecutionModelRayGenerationKHR:       "RayGenerationKHR",
	ExecutionModelIntersectionKHR:        "IntersectionKHR",
	ExecutionModelAnyHitKHR:              "AnyHitKHR",
	ExecutionModelClosestHitKHR:          "ClosestHitKHR",
	ExecutionModelMissKHR:                "MissKHR",
	ExecutionModelCallableKHR:            "CallableKHR",
	ExecutionModelTaskEXT:                "TaskEXT",
	ExecutionModelMeshEXT:                "MeshEXT",
}

// Valid reports whether m is an encoded execution model.
func (m ExecutionModel) Valid() bool {
	_, ok := executionModelNames[m]
	return ok
}

func (m ExecutionModel) String() string {
	if name, ok := executionModelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ExecutionModel(%d)", uint32(m))
}

var storageClassNames = map[StorageClass]string{
	StorageClassUniformConstant:         "UniformConstant",
	StorageClassInput:                   "Input",
	StorageClassUniform:                 "Uniform",
	StorageClassOutput:                  "Output",
	StorageClassWorkgroup:               "Workgroup",
	StorageClassCrossWorkgroup:          "CrossWorkgroup",
	StorageClassPrivate:                 "Private",
	StorageClassFunction:                "Function",
	StorageClassGeneric:                 "Generic",
	StorageClassPushConstant:            "PushConstant",
	StorageClassAtomicCounter:           "AtomicCounter",
	StorageClassImage:                   "Image",
	StorageClassStorageBuffer:           "StorageBuffer",
	StorageClassTileImageEXT:            "TileImageEXT",
	StorageClassCallableDataKHR:         "CallableDataKHR",
	StorageClassIncomingCallableDataKHR: "IncomingCallableDataKHR",
	StorageClassRayPayloadKHR:           "RayPayloadKHR",
	StorageClassHitAttributeKHR:         "HitAttributeKHR",
	StorageClassIncomingRayPayloadKHR:   "IncomingRayPayloadKHR",
	StorageClassShaderRecordBufferKHR:   "ShaderRecordBufferKHR",
	StorageClassPhysicalStorageBuffer:   "PhysicalStorageBuffer",
	StorageClassHitObjectAttributeNV:    "HitObjectAttributeNV",
	StorageClassTaskPayloadWorkgroupEXT: "TaskPayloadWorkgroupEXT",
}

// Valid reports whether c is an encoded storage class.
func (c StorageClass) Valid() bool {
	_, ok := storageClassNames[c]
	return ok
}

func (c StorageClass) String() string {
	if name, ok := storageClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("StorageClass(%d)", uint32(c))
}

var dimNames = map[Dim]string{
	Dim1D: "1D", Dim2D: "2D", Dim3D: "3D", DimCube: "Cube", DimRect: "Rect",
	DimBuffer: "Buffer", DimSubpassData: "SubpassData", DimTileImage: "TileImageDataEXT",
}

// Valid reports whether d is an encoded image dimensionality.
func (d Dim) Valid() bool {
	_, ok := dimNames[d]
	return ok
}

func (d Dim) String() string {
	if name, ok := dimNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dim(%d)", uint32(d))
}

var imageFormatNames = [...]string{
	"Unknown", "Rgba32f", "Rgba16f", "R32f", "Rgba8", "Rgba8Snorm", "Rg32f",
	"Rg16f", "R11fG11fB10f", "R16f", "Rgba16", "Rgb10A2", "Rg16", "Rg8",
	"R16", "R8", "Rgba16Snorm", "Rg16Snorm", "Rg8Snorm", "R16Snorm",
	"R8Snorm", "Rgba32i", "Rgba16i", "Rgba8i", "R32i", "Rg32i", "Rg16i",
	"Rg8i", "R16i", "R8i", "Rgba32ui", "Rgba16ui", "Rgba8ui", "R32ui",
	"Rgb10a2ui", "Rg32ui", "Rg16ui", "Rg8ui", "R16ui", "R8ui", "R64ui", "R64i",
}

// Valid reports whether f is an encoded image format.
func (f ImageFormat) Valid() bool {
	return int(f) < len(imageFormatNames)
}

func (f ImageFormat) String() string {
	if f.Valid() {
		return imageFormatNames[f]
	}
	return fmt.Sprintf("ImageFormat(%d)", uint32(f))
}

var executionModeNames = map[ExecutionMode]string{
	0: "Invocations", 1: "SpacingEqual", 2: "SpacingFractionalEven",
	3: "SpacingFractionalOdd", 4: "VertexOrderCw", 5: "VertexOrderCcw",
	6: "PixelCenterInteger", 7: "OriginUpperLeft", 8: "OriginLowerLeft",
	9: "EarlyFragmentTests", 10: "PointMode", 11: "Xfb", 12: "DepthReplacing",
	14: "DepthGreater", 15: "DepthLess", 16: "DepthUnchanged",
	17: "LocalSize", 18: "LocalSizeHint", 19: "InputPoints", 20: "InputLines",
	21: "InputLinesAdjacency", 22: "Triangles", 23: "InputTrianglesAdjacency",
	24: "Quads", 25: "Isolines", 26: "OutputVertices", 27: "OutputPoints",
	28: "OutputLineStrip", 29: "OutputTriangleStrip", 30: "VecTypeHint",
	31: "ContractionOff", 33: "Initializer", 34: "Finalizer",
	35: "SubgroupSize", 36: "SubgroupsPerWorkgroup", 38: "LocalSizeId",
}

func (m ExecutionMode) String() string {
	if name, ok := executionModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ExecutionMode(%d)", uint32(m))
}

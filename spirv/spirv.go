package spirv

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions
var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// SPIR-V magic number and constants
const (
	MagicNumber = 0x07230203
	GeneratorID = 0x00000000 // Unregistered generator

	// HeaderWords is the number of words preceding the first instruction.
	HeaderWords = 5
)

// Capability represents a SPIR-V capability.
type Capability uint32

// Common capabilities
const (
	CapabilityMatrix          Capability = 0
	CapabilityShader          Capability = 1
	CapabilityInputAttachment Capability = 40
)

// AddressingModel represents a SPIR-V addressing model.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

// MemoryModel represents a SPIR-V memory model.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

// FunctionControl represents the function control mask of OpFunction.
type FunctionControl uint32

const (
	FunctionControlNone       FunctionControl = 0
	FunctionControlInline     FunctionControl = 1
	FunctionControlDontInline FunctionControl = 2
)

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// Opcodes interpreted by the reader or emitted by the builder.
const (
	OpNop                       OpCode = 0
	OpUndef                     OpCode = 1
	OpSourceContinued           OpCode = 2
	OpSource                    OpCode = 3
	OpSourceExtension           OpCode = 4
	OpName                      OpCode = 5
	OpMemberName                OpCode = 6
	OpString                    OpCode = 7
	OpLine                      OpCode = 8
	OpExtension                 OpCode = 10
	OpExtInstImport             OpCode = 11
	OpExtInst                   OpCode = 12
	OpMemoryModel               OpCode = 14
	OpEntryPoint                OpCode = 15
	OpExecutionMode             OpCode = 16
	OpCapability                OpCode = 17
	OpTypeVoid                  OpCode = 19
	OpTypeBool                  OpCode = 20
	OpTypeInt                   OpCode = 21
	OpTypeFloat                 OpCode = 22
	OpTypeVector                OpCode = 23
	OpTypeMatrix                OpCode = 24
	OpTypeImage                 OpCode = 25
	OpTypeSampler               OpCode = 26
	OpTypeSampledImage          OpCode = 27
	OpTypeArray                 OpCode = 28
	OpTypeRuntimeArray          OpCode = 29
	OpTypeStruct                OpCode = 30
	OpTypeOpaque                OpCode = 31
	OpTypePointer               OpCode = 32
	OpTypeFunction              OpCode = 33
	OpTypeEvent                 OpCode = 34
	OpTypeDeviceEvent           OpCode = 35
	OpTypeReserveID             OpCode = 36
	OpTypeQueue                 OpCode = 37
	OpTypePipe                  OpCode = 38
	OpTypeForwardPointer        OpCode = 39
	OpConstantTrue              OpCode = 41
	OpConstantFalse             OpCode = 42
	OpConstant                  OpCode = 43
	OpConstantComposite         OpCode = 44
	OpConstantSampler           OpCode = 45
	OpConstantNull              OpCode = 46
	OpSpecConstantTrue          OpCode = 48
	OpSpecConstantFalse         OpCode = 49
	OpSpecConstant              OpCode = 50
	OpSpecConstantComposite     OpCode = 51
	OpSpecConstantOp            OpCode = 52
	OpFunction                  OpCode = 54
	OpFunctionParameter         OpCode = 55
	OpFunctionEnd               OpCode = 56
	OpFunctionCall              OpCode = 57
	OpVariable                  OpCode = 59
	OpImageTexelPointer         OpCode = 60
	OpLoad                      OpCode = 61
	OpStore                     OpCode = 62
	OpCopyMemory                OpCode = 63
	OpAccessChain               OpCode = 65
	OpInBoundsAccessChain       OpCode = 66
	OpPtrAccessChain            OpCode = 67
	OpArrayLength               OpCode = 68
	OpInBoundsPtrAccessChain    OpCode = 70
	OpDecorate                  OpCode = 71
	OpMemberDecorate            OpCode = 72
	OpDecorationGroup           OpCode = 73
	OpGroupDecorate             OpCode = 74
	OpGroupMemberDecorate       OpCode = 75
	OpVectorExtractDynamic      OpCode = 77
	OpFAdd                      OpCode = 129
	OpFMul                      OpCode = 133
	OpBitCount                  OpCode = 205
	OpAtomicLoad                OpCode = 227
	OpAtomicStore               OpCode = 228
	OpAtomicExchange            OpCode = 229
	OpAtomicCompareExchange     OpCode = 230
	OpAtomicCompareExchangeWeak OpCode = 231
	OpAtomicIIncrement          OpCode = 232
	OpAtomicIDecrement          OpCode = 233
	OpAtomicIAdd                OpCode = 234
	OpAtomicISub                OpCode = 235
	OpAtomicSMin                OpCode = 236
	OpAtomicUMin                OpCode = 237
	OpAtomicSMax                OpCode = 238
	OpAtomicUMax                OpCode = 239
	OpAtomicAnd                 OpCode = 240
	OpAtomicOr                  OpCode = 241
	OpAtomicXor                 OpCode = 242
	OpPhi                       OpCode = 245
	OpLoopMerge                 OpCode = 246
	OpSelectionMerge            OpCode = 247
	OpLabel                     OpCode = 248
	OpBranch                    OpCode = 249
	OpBranchConditional         OpCode = 250
	OpReturn                    OpCode = 253
	OpReturnValue               OpCode = 254
	OpNoLine                    OpCode = 317
	OpModuleProcessed           OpCode = 330
	OpExecutionModeID           OpCode = 331
	OpDecorateID                OpCode = 332
	OpDecorateString            OpCode = 5632
	OpMemberDecorateString      OpCode = 5633
	OpTypeRayQueryKHR           OpCode = 4472
	OpTypeAccelerationStruct    OpCode = 5341
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

// Decorations consulted during reflection.
const (
	DecorationSpecID               Decoration = 1
	DecorationBlock                Decoration = 2
	DecorationBufferBlock          Decoration = 3
	DecorationRowMajor             Decoration = 4
	DecorationColMajor             Decoration = 5
	DecorationArrayStride          Decoration = 6
	DecorationMatrixStride         Decoration = 7
	DecorationBuiltIn              Decoration = 11
	DecorationNonWritable          Decoration = 24
	DecorationNonReadable          Decoration = 25
	DecorationLocation             Decoration = 30
	DecorationComponent            Decoration = 31
	DecorationBinding              Decoration = 33
	DecorationDescriptorSet        Decoration = 34
	DecorationOffset               Decoration = 35
	DecorationInputAttachmentIndex Decoration = 43
)

// BuiltIn identifies a built-in variable.
type BuiltIn uint32

const (
	BuiltInPosition    BuiltIn = 0
	BuiltInVertexIndex BuiltIn = 42
)

// StorageClass represents a SPIR-V storage class.
type StorageClass uint32

const (
	StorageClassUniformConstant         StorageClass = 0
	StorageClassInput                   StorageClass = 1
	StorageClassUniform                 StorageClass = 2
	StorageClassOutput                  StorageClass = 3
	StorageClassWorkgroup               StorageClass = 4
	StorageClassCrossWorkgroup          StorageClass = 5
	StorageClassPrivate                 StorageClass = 6
	StorageClassFunction                StorageClass = 7
	StorageClassGeneric                 StorageClass = 8
	StorageClassPushConstant            StorageClass = 9
	StorageClassAtomicCounter           StorageClass = 10
	StorageClassImage                   StorageClass = 11
	StorageClassStorageBuffer           StorageClass = 12
	StorageClassTileImageEXT            StorageClass = 4172
	StorageClassCallableDataKHR         StorageClass = 5328
	StorageClassIncomingCallableDataKHR StorageClass = 5329
	StorageClassRayPayloadKHR           StorageClass = 5338
	StorageClassHitAttributeKHR         StorageClass = 5339
	StorageClassIncomingRayPayloadKHR   StorageClass = 5342
	StorageClassShaderRecordBufferKHR   StorageClass = 5343
	StorageClassPhysicalStorageBuffer   StorageClass = 5349
	StorageClassHitObjectAttributeNV    StorageClass = 5385
	StorageClassTaskPayloadWorkgroupEXT StorageClass = 5402
)

// ExecutionModel represents the shader stage of an entry point.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
	ExecutionModelTaskNV                 ExecutionModel = 5267
	ExecutionModelMeshNV                 ExecutionModel = 5268
	ExecutionModelRayGenerationKHR       ExecutionModel = 5313
	ExecutionModelIntersectionKHR        ExecutionModel = 5314
	ExecutionModelAnyHitKHR              ExecutionModel = 5315
	ExecutionModelClosestHitKHR          ExecutionModel = 5316
	ExecutionModelMissKHR                ExecutionModel = 5317
	ExecutionModelCallableKHR            ExecutionModel = 5318
	ExecutionModelTaskEXT                ExecutionModel = 5364
	ExecutionModelMeshEXT                ExecutionModel = 5365
)

// ExecutionMode represents an execution mode declared for an entry point.
type ExecutionMode uint32

const (
	ExecutionModeOriginUpperLeft    ExecutionMode = 7
	ExecutionModeEarlyFragmentTests ExecutionMode = 9
	ExecutionModeDepthReplacing     ExecutionMode = 12
	ExecutionModeLocalSize          ExecutionMode = 17
)

// Dim represents the dimensionality of an image type.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
	DimTileImage   Dim = 4173
)

// ImageFormat represents the texel format of a storage image.
type ImageFormat uint32

const (
	ImageFormatUnknown      ImageFormat = 0
	ImageFormatRgba32f      ImageFormat = 1
	ImageFormatRgba16f      ImageFormat = 2
	ImageFormatR32f         ImageFormat = 3
	ImageFormatRgba8        ImageFormat = 4
	ImageFormatRgba8Snorm   ImageFormat = 5
	ImageFormatRg32f        ImageFormat = 6
	ImageFormatRg16f        ImageFormat = 7
	ImageFormatR11fG11fB10f ImageFormat = 8
	ImageFormatR16f         ImageFormat = 9
	ImageFormatRgba16       ImageFormat = 10
	ImageFormatRgb10A2      ImageFormat = 11
	ImageFormatRg16         ImageFormat = 12
	ImageFormatRg8          ImageFormat = 13
	ImageFormatR16          ImageFormat = 14
	ImageFormatR8           ImageFormat = 15
	ImageFormatRgba16Snorm  ImageFormat = 16
	ImageFormatRg16Snorm    ImageFormat = 17
	ImageFormatRg8Snorm     ImageFormat = 18
	ImageFormatR16Snorm     ImageFormat = 19
	ImageFormatR8Snorm      ImageFormat = 20
	ImageFormatRgba32i      ImageFormat = 21
	ImageFormatRgba16i      ImageFormat = 22
	ImageFormatRgba8i       ImageFormat = 23
	ImageFormatR32i         ImageFormat = 24
	ImageFormatRg32i        ImageFormat = 25
	ImageFormatRg16i        ImageFormat = 26
	ImageFormatRg8i         ImageFormat = 27
	ImageFormatR16i         ImageFormat = 28
	ImageFormatR8i          ImageFormat = 29
	ImageFormatRgba32ui     ImageFormat = 30
	ImageFormatRgba16ui     ImageFormat = 31
	ImageFormatRgba8ui      ImageFormat = 32
	ImageFormatR32ui        ImageFormat = 33
	ImageFormatRgb10a2ui    ImageFormat = 34
	ImageFormatRg32ui       ImageFormat = 35
	ImageFormatRg16ui       ImageFormat = 36
	ImageFormatRg8ui        ImageFormat = 37
	ImageFormatR16ui        ImageFormat = 38
	ImageFormatR8ui         ImageFormat = 39
	ImageFormatR64ui        ImageFormat = 40
	ImageFormatR64i         ImageFormat = 41
)

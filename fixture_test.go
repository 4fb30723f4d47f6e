package spvreflect

import (
	"testing"

	"github.com/gogpu/spvreflect/spirv"
	"github.com/gogpu/spvreflect/types"
)

var (
	f32  = types.Float(4)
	vec4 = types.VectorType{Scalar: f32, Count: 4}
)

// fixture assembles small shader modules for reflection tests.
type fixture struct {
	*spirv.ModuleBuilder

	void, voidFn uint32
	f32, u32     uint32
	vec4         uint32
}

func newFixture() *fixture {
	b := spirv.NewModuleBuilder(spirv.Version1_3)
	b.AddCapability(spirv.CapabilityShader)
	b.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	f := &fixture{ModuleBuilder: b}
	f.void = b.AddTypeVoid()
	f.voidFn = b.AddTypeFunction(f.void)
	f.f32 = b.AddTypeFloat(32)
	f.u32 = b.AddTypeInt(32, false)
	f.vec4 = b.AddTypeVector(f.f32, 4)
	return f
}

// variable declares a global variable pointing to pointee.
func (f *fixture) variable(class spirv.StorageClass, pointee uint32) uint32 {
	return f.AddVariable(f.AddTypePointer(class, pointee), class)
}

// input declares an input variable at location.
func (f *fixture) input(pointee, location uint32) uint32 {
	v := f.variable(spirv.StorageClassInput, pointee)
	f.AddDecorate(v, spirv.DecorationLocation, location)
	return v
}

// output declares an output variable at location.
func (f *fixture) output(pointee, location uint32) uint32 {
	v := f.variable(spirv.StorageClassOutput, pointee)
	f.AddDecorate(v, spirv.DecorationLocation, location)
	return v
}

// descriptor declares a variable bound at (set, bind).
func (f *fixture) descriptor(class spirv.StorageClass, pointee, set, bind uint32) uint32 {
	v := f.variable(class, pointee)
	f.AddDecorate(v, spirv.DecorationDescriptorSet, set)
	f.AddDecorate(v, spirv.DecorationBinding, bind)
	return v
}

// block declares a struct with the given member types at the given
// offsets.
func (f *fixture) block(members []uint32, offsets []uint32, names ...string) uint32 {
	s := f.AddTypeStruct(members...)
	f.AddDecorate(s, spirv.DecorationBlock)
	for i, offset := range offsets {
		f.AddMemberDecorate(s, uint32(i), spirv.DecorationOffset, offset)
	}
	for i, name := range names {
		f.AddMemberName(s, uint32(i), name)
	}
	return s
}

// lightBlock declares
//
//	layout(set = 0, binding = 1) uniform Light { vec4 color; float intensity; } light;
func (f *fixture) lightBlock() uint32 {
	s := f.block([]uint32{f.vec4, f.f32}, []uint32{0, 16}, "color", "intensity")
	v := f.descriptor(spirv.StorageClassUniform, s, 0, 1)
	f.AddName(v, "light")
	return v
}

func lightType() types.StructType {
	return types.StructType{Members: []types.StructMember{
		{Name: "color", Offset: 0, Type: vec4},
		{Name: "intensity", Offset: 16, Type: f32},
	}}
}

// body emits function fn, loading every variable in touch and calling
// every callee.
func (f *fixture) body(fn uint32, touch []uint32, callees ...uint32) {
	f.AddFunctionWithID(fn, f.voidFn, f.void, spirv.FunctionControlNone)
	f.AddLabel()
	for _, v := range touch {
		f.AddLoad(f.f32, v)
	}
	for _, callee := range callees {
		f.AddFunctionCall(f.void, callee)
	}
	f.AddReturn()
	f.AddFunctionEnd()
}

// entry declares an entry point whose function loads every variable in
// touch.
func (f *fixture) entry(model spirv.ExecutionModel, name string, touch ...uint32) uint32 {
	fn := f.AllocID()
	f.AddEntryPoint(model, fn, name, touch)
	f.body(fn, touch)
	return fn
}

func (f *fixture) reflect(t *testing.T) []EntryPoint {
	t.Helper()
	return f.reflectWith(t, DefaultOptions())
}

func (f *fixture) reflectWith(t *testing.T, opts Options) []EntryPoint {
	t.Helper()
	entryPoints, err := ReflectWithOptions(FromWords(f.BuildWords()), opts)
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}
	return entryPoints
}

func (f *fixture) reflectErr() error {
	_, err := Reflect(FromWords(f.BuildWords()))
	return err
}

// single reflects a module expected to have exactly one entry point.
func (f *fixture) single(t *testing.T) EntryPoint {
	t.Helper()
	entryPoints := f.reflect(t)
	if len(entryPoints) != 1 {
		t.Fatalf("got %d entry points, want 1", len(entryPoints))
	}
	return entryPoints[0]
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/spvreflect"
	"github.com/gogpu/spvreflect/spirv"
	"github.com/gogpu/spvreflect/types"
)

// lightShader builds a fragment shader reading a uniform block at
// (set=0, bind=1) and writing a color output.
func lightShader() []byte {
	b := spirv.NewModuleBuilder(spirv.Version1_3)
	b.AddCapability(spirv.CapabilityShader)
	b.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	void := b.AddTypeVoid()
	voidFn := b.AddTypeFunction(void)
	f32 := b.AddTypeFloat(32)
	vec4 := b.AddTypeVector(f32, 4)

	block := b.AddTypeStruct(vec4, f32)
	b.AddDecorate(block, spirv.DecorationBlock)
	b.AddMemberDecorate(block, 0, spirv.DecorationOffset, 0)
	b.AddMemberDecorate(block, 1, spirv.DecorationOffset, 16)
	b.AddMemberName(block, 0, "color")
	b.AddMemberName(block, 1, "intensity")
	light := b.AddVariable(b.AddTypePointer(spirv.StorageClassUniform, block), spirv.StorageClassUniform)
	b.AddDecorate(light, spirv.DecorationDescriptorSet, 0)
	b.AddDecorate(light, spirv.DecorationBinding, 1)
	b.AddName(light, "light")

	out := b.AddVariable(b.AddTypePointer(spirv.StorageClassOutput, vec4), spirv.StorageClassOutput)
	b.AddDecorate(out, spirv.DecorationLocation, 0)
	b.AddName(out, "target")

	main := b.AllocID()
	b.AddEntryPoint(spirv.ExecutionModelFragment, main, "main", []uint32{light, out})
	b.AddExecutionMode(main, spirv.ExecutionModeOriginUpperLeft)
	b.AddFunctionWithID(main, voidFn, void, spirv.FunctionControlNone)
	b.AddLabel()
	color := b.AddLoad(vec4, light)
	b.AddStore(out, color)
	b.AddReturn()
	b.AddFunctionEnd()
	return b.Build()
}

func writeShader(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func expectedReport(file string) report {
	f32 := types.Float(4)
	vec4 := types.VectorType{Scalar: f32, Count: 4}
	desc := types.UniformBuffer{BindCount: 1, Struct: types.StructType{Members: []types.StructMember{
		{Name: "color", Offset: 0, Type: vec4},
		{Name: "intensity", Offset: 16, Type: f32},
	}}}
	return report{
		File: file,
		EntryPoints: []entryReport{{
			Name:           "main",
			ExecutionModel: "Fragment",
			ExecutionModes: []string{spirv.ExecutionModeOriginUpperLeft.String()},
			Outputs: []variableReport{{
				Location: spvreflect.InterfaceLocation{}.String(),
				Name:     "target",
				Type:     vec4.String(),
			}},
			Descriptors: []descReport{{
				Binding: spvreflect.DescBind(0, 1).String(),
				Name:    "light",
				Type:    desc.String(),
				Size:    20,
			}},
		}},
	}
}

func TestReflectFiles_YAML(t *testing.T) {
	a := writeShader(t, "a.spv", lightShader())
	b := writeShader(t, "b.spv", lightShader())

	reports, err := reflectFiles(context.Background(), []string{a, b}, spvreflect.DefaultOptions(), 2)
	if err != nil {
		t.Fatalf("reflectFiles: %v", err)
	}
	var buf bytes.Buffer
	if err := writeYAML(&buf, reports); err != nil {
		t.Fatalf("writeYAML: %v", err)
	}

	var got []report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	want := []report{expectedReport(a), expectedReport(b)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestReflectFiles_Errors(t *testing.T) {
	corrupt := lightShader()
	corrupt = append(corrupt, 0, 0, 0x05, 0x00) // word count 5, no operands
	path := writeShader(t, "bad.spv", corrupt)

	_, err := reflectFiles(context.Background(), []string{path}, spvreflect.DefaultOptions(), 1)
	if err == nil || !strings.Contains(err.Error(), "bad.spv") {
		t.Errorf("got %v, want an error naming bad.spv", err)
	}

	_, err = reflectFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing.spv")}, spvreflect.DefaultOptions(), 1)
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeText(&buf, []report{expectedReport("light.spv")}); err != nil {
		t.Fatalf("writeText: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"light.spv:\n",
		"  Fragment \"main\"\n",
		"    out (loc=0, comp=0) target: vec4<f32>\n",
		"    desc (set=0, bind=1) light: ",
		" (20 bytes)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text report missing %q:\n%s", want, got)
		}
	}
}

func TestResolveSymbol(t *testing.T) {
	path := writeShader(t, "light.spv", lightShader())
	ep, err := loadEntryPoint(path, "main")
	if err != nil {
		t.Fatalf("loadEntryPoint: %v", err)
	}

	tests := []struct {
		symbol string
		want   string
	}{
		{"light.intensity", "(set=0, bind=1) offset=16 f32"},
		{"0.1.0", "(set=0, bind=1) offset=0 vec4<f32>"},
		{"out.target", "output (loc=0, comp=0) vec4<f32>"},
		{"out.0", "output (loc=0, comp=0) vec4<f32>"},
	}
	for _, tt := range tests {
		got, ok := resolveSymbol(ep.Manifest, tt.symbol)
		if !ok {
			t.Errorf("resolveSymbol(%q) failed", tt.symbol)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveSymbol(%q) = %q, want %q", tt.symbol, got, tt.want)
		}
	}
	if _, ok := resolveSymbol(ep.Manifest, "in.0"); ok {
		t.Error(`resolveSymbol("in.0") should fail`)
	}

	if _, err := loadEntryPoint(path, "vs_main"); err == nil {
		t.Error("loadEntryPoint should fail for an unknown entry point")
	}
}

func TestDisassemble(t *testing.T) {
	var buf bytes.Buffer
	words := spvreflect.FromBytes(lightShader()).Words()
	if err := disassemble(&buf, words); err != nil {
		t.Fatalf("disassemble: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"; SPIR-V\n",
		"; Version: 1.3\n",
		"OpEntryPoint Fragment",
		`OpName %`,
		`"light"`,
		"OpTypeFloat %32",
		"= OpVariable",
		"Uniform\n",
		"OpFunctionEnd\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("disassembly missing %q:\n%s", want, got)
		}
	}

	if err := disassemble(&buf, []uint32{1, 2}); err == nil {
		t.Error("disassemble should reject a non-SPIR-V input")
	}
}

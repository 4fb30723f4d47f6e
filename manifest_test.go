package spvreflect

import (
	"errors"
	"testing"

	"github.com/gogpu/spvreflect/spirv"
	"github.com/gogpu/spvreflect/types"
	"github.com/google/go-cmp/cmp"
)

func lightManifest(t *testing.T) *Manifest {
	t.Helper()
	f := newFixture()
	light := f.lightBlock()
	f.entry(spirv.ExecutionModelFragment, "main", light)
	return f.single(t).Manifest
}

func TestManifest_ResolveDesc(t *testing.T) {
	m := lightManifest(t)
	desc := types.UniformBuffer{BindCount: 1, Struct: lightType()}

	tests := []struct {
		symbol string
		want   *types.MemberResolution
	}{
		{"0.1", nil},
		{"light", nil},
		{"0.1.0", &types.MemberResolution{Offset: 0, Type: vec4}},
		{"light.0", &types.MemberResolution{Offset: 0, Type: vec4}},
		{"light.intensity", &types.MemberResolution{Offset: 16, Type: f32}},
		{"0.1.intensity", &types.MemberResolution{Offset: 16, Type: f32}},
		{"light.missing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, ok := m.ResolveDesc(tt.symbol)
			if !ok {
				t.Fatalf("ResolveDesc(%q) failed", tt.symbol)
			}
			if got.Binding != DescBind(0, 1) {
				t.Errorf("binding = %v, want (set=0, bind=1)", got.Binding)
			}
			if diff := cmp.Diff(types.DescriptorType(desc), got.Desc); diff != "" {
				t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, got.Member); diff != "" {
				t.Errorf("member mismatch (-want +got):\n%s", diff)
			}
		})
	}

	for _, symbol := range []string{"0.2", "shadow", "0", "0.x", ""} {
		if _, ok := m.ResolveDesc(symbol); ok {
			t.Errorf("ResolveDesc(%q) should fail", symbol)
		}
	}
}

func TestManifest_ResolveInterface(t *testing.T) {
	f := newFixture()
	uv := f.input(f.vec4, 1)
	color := f.output(f.vec4, 0)
	f.AddName(uv, "uv")
	f.AddName(color, "color")
	f.entry(spirv.ExecutionModelFragment, "main", uv, color)
	m := f.single(t).Manifest

	for _, symbol := range []string{"1", "uv"} {
		got, ok := m.ResolveInput(symbol)
		if !ok {
			t.Fatalf("ResolveInput(%q) failed", symbol)
		}
		want := InterfaceResolution{Location: InterfaceLocation{Location: 1}, Type: vec4}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ResolveInput(%q) mismatch (-want +got):\n%s", symbol, diff)
		}
	}
	if _, ok := m.ResolveOutput("color"); !ok {
		t.Error(`ResolveOutput("color") failed`)
	}
	for _, symbol := range []string{"color", "0", "uv.x", "1.0"} {
		if _, ok := m.ResolveInput(symbol); ok {
			t.Errorf("ResolveInput(%q) should fail", symbol)
		}
	}
	if _, ok := m.ResolveOutput("uv"); ok {
		t.Error(`ResolveOutput("uv") should fail`)
	}

	if name, ok := m.NameOf(InputLocator(InterfaceLocation{Location: 1})); !ok || name != "uv" {
		t.Errorf("NameOf = %q, %v, want uv", name, ok)
	}
	if loc, ok := m.OutputName("color"); !ok || loc != (InterfaceLocation{}) {
		t.Errorf("OutputName = %v, %v", loc, ok)
	}
}

func pushConstants(names []string, offsets []uint32) *Manifest {
	m := newManifest()
	var s types.StructType
	for i, name := range names {
		s.Members = append(s.Members, types.StructMember{Name: name, Offset: offsets[i], Type: f32})
	}
	m.descs[PushConstantBinding()] = types.PushConstantBlock{Struct: s}
	return m
}

func TestManifest_MergePushConstants(t *testing.T) {
	vs := pushConstants([]string{"scale"}, []uint32{0})
	fs := pushConstants([]string{"", "bias"}, []uint32{0, 4})

	merged, err := vs.Merge(fs)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	got, _ := merged.GetDesc(PushConstantBinding())
	want := types.PushConstantBlock{Struct: types.StructType{Members: []types.StructMember{
		{Name: "scale", Offset: 0, Type: f32},
		{Name: "bias", Offset: 4, Type: f32},
	}}}
	if diff := cmp.Diff(types.DescriptorType(want), got); diff != "" {
		t.Errorf("push constants mismatch (-want +got):\n%s", diff)
	}

	// The inputs are left untouched.
	if got, _ := vs.GetDesc(PushConstantBinding()); len(got.(types.PushConstantBlock).Struct.Members) != 1 {
		t.Error("Merge modified its receiver")
	}
}

func TestManifest_MergeConflicts(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs *Manifest
	}{
		{
			"push constant member name",
			pushConstants([]string{"scale"}, []uint32{0}),
			pushConstants([]string{"bias"}, []uint32{0}),
		},
		{
			"push constant member offset",
			pushConstants([]string{"scale"}, []uint32{0}),
			pushConstants([]string{"scale"}, []uint32{4}),
		},
		{
			"descriptor type",
			func() *Manifest {
				m := newManifest()
				m.descs[DescBind(0, 0)] = types.SamplerDescriptor{BindCount: 1}
				return m
			}(),
			func() *Manifest {
				m := newManifest()
				m.descs[DescBind(0, 0)] = types.SamplerDescriptor{BindCount: 2}
				return m
			}(),
		},
		{
			"descriptor name",
			func() *Manifest {
				m := newManifest()
				m.descs[DescBind(0, 0)] = types.SamplerDescriptor{BindCount: 1}
				m.names["s"] = DescriptorLocator(DescBind(0, 0))
				return m
			}(),
			func() *Manifest {
				m := newManifest()
				m.descs[DescBind(0, 1)] = types.SamplerDescriptor{BindCount: 1}
				m.names["s"] = DescriptorLocator(DescBind(0, 1))
				return m
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.lhs.Merge(tt.rhs)
			if !errors.Is(err, spirv.ErrMismatchedManifest) || !spirv.IsMismatched(err) {
				t.Errorf("got %v, want ErrMismatchedManifest", err)
			}
		})
	}
}

func TestManifest_MergeStages(t *testing.T) {
	f := newFixture()
	light := f.lightBlock()
	vsIn := f.input(f.vec4, 0)
	vsOut := f.output(f.vec4, 0)
	fsIn := f.input(f.vec4, 0)
	fsOut := f.output(f.vec4, 0)
	// The varying shares its name between stages.
	f.AddName(vsOut, "color")
	f.AddName(fsIn, "color")
	f.AddName(vsIn, "position")
	f.AddName(fsOut, "target")
	f.entry(spirv.ExecutionModelVertex, "vs", vsIn, vsOut, light)
	f.entry(spirv.ExecutionModelFragment, "fs", fsIn, fsOut, light)

	entryPoints := f.reflect(t)
	merged, err := entryPoints[0].Merge(entryPoints[1].Manifest)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if _, ok := merged.InputName("position"); !ok {
		t.Error("vertex input name lost")
	}
	if _, ok := merged.OutputName("target"); !ok {
		t.Error("fragment output name lost")
	}
	if _, ok := merged.NameOf(OutputLocator(InterfaceLocation{})); !ok {
		t.Error("fragment output unnamed")
	}
	if _, ok := merged.ResolveDesc("light.color"); !ok {
		t.Error("shared descriptor lost")
	}
	if got := len(merged.Descs()); got != 1 {
		t.Errorf("got %d descriptors, want 1", got)
	}
}

func TestDescriptorBinding_Order(t *testing.T) {
	m := newManifest()
	m.descs[PushConstantBinding()] = types.PushConstantBlock{}
	m.descs[DescBind(1, 0)] = types.SamplerDescriptor{BindCount: 1}
	m.descs[DescBind(0, 2)] = types.SamplerDescriptor{BindCount: 1}

	var got []string
	for _, d := range m.Descs() {
		got = append(got, d.Binding.String())
	}
	want := []string{"(set=0, bind=2)", "(set=1, bind=0)", "(push_constant)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

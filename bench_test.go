package spvreflect

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/gogpu/spvreflect/spirv"
)

// ---------------------------------------------------------------------------
// Benchmark modules at different complexity levels
// ---------------------------------------------------------------------------

// smallModule is a fragment shader with one input and one output.
func smallModule() []uint32 {
	f := newFixture()
	in := f.input(f.vec4, 0)
	out := f.output(f.vec4, 0)
	f.entry(spirv.ExecutionModelFragment, "main", in, out)
	return f.BuildWords()
}

// mediumModule is a vertex and fragment pair sharing a uniform block.
func mediumModule() []uint32 {
	f := newFixture()
	light := f.lightBlock()
	var varyings []uint32
	for loc := uint32(0); loc < 8; loc++ {
		varyings = append(varyings, f.output(f.vec4, loc))
	}
	f.entry(spirv.ExecutionModelVertex, "vs", append(varyings, light)...)
	f.entry(spirv.ExecutionModelFragment, "fs", f.input(f.vec4, 0), light)
	return f.BuildWords()
}

// largeModule has 64 descriptors reached through a chain of 32 helper
// functions.
func largeModule() []uint32 {
	f := newFixture()
	var descs []uint32
	for bind := uint32(0); bind < 64; bind++ {
		s := f.block([]uint32{f.vec4, f.f32}, []uint32{0, 16}, "a", "b")
		v := f.descriptor(spirv.StorageClassUniform, s, bind/16, bind%16)
		f.AddName(v, fmt.Sprintf("ubo%d", bind))
		descs = append(descs, v)
	}

	next := uint32(0)
	for i := 0; i < 32; i++ {
		fn := f.AllocID()
		var callees []uint32
		if next != 0 {
			callees = append(callees, next)
		}
		f.body(fn, descs[i*2:i*2+2], callees...)
		next = fn
	}
	main := f.AllocID()
	f.AddEntryPoint(spirv.ExecutionModelGLCompute, main, "main", nil)
	f.AddExecutionMode(main, spirv.ExecutionModeLocalSize, 64, 1, 1)
	f.body(main, nil, next)
	return f.BuildWords()
}

type moduleCase struct {
	name  string
	words []uint32
}

func modulesByComplexity() []moduleCase {
	return []moduleCase{
		{"small", smallModule()},
		{"medium", mediumModule()},
		{"large", largeModule()},
	}
}

// ---------------------------------------------------------------------------
// Reflection
// ---------------------------------------------------------------------------

// BenchmarkReflect benchmarks reflection grouped by module complexity.
// Reports allocations and throughput in bytes/sec.
func BenchmarkReflect(b *testing.B) {
	for _, mc := range modulesByComplexity() {
		b.Run(mc.name, func(b *testing.B) {
			bin := FromWords(mc.words)
			b.ReportAllocs()
			b.SetBytes(int64(len(mc.words) * 4))
			b.ResetTimer()

			var result []EntryPoint
			for i := 0; i < b.N; i++ {
				var err error
				result, err = Reflect(bin)
				if err != nil {
					b.Fatalf("reflect failed: %v", err)
				}
			}
			runtime.KeepAlive(result)
		})
	}
}

// BenchmarkReflectAllResources measures reflection without the call graph
// walk.
func BenchmarkReflectAllResources(b *testing.B) {
	bin := FromWords(largeModule())
	opts := Options{ReferenceAllResources: true}
	b.ReportAllocs()
	b.ResetTimer()

	var result []EntryPoint
	for i := 0; i < b.N; i++ {
		var err error
		result, err = ReflectWithOptions(bin, opts)
		if err != nil {
			b.Fatalf("reflect failed: %v", err)
		}
	}
	runtime.KeepAlive(result)
}

// BenchmarkFromBytes measures byte order detection and word decoding.
func BenchmarkFromBytes(b *testing.B) {
	data := FromWords(largeModule()).Bytes()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	var result Binary
	for i := 0; i < b.N; i++ {
		result = FromBytes(data)
	}
	runtime.KeepAlive(result)
}

// BenchmarkResolveDesc measures symbol resolution against a manifest.
func BenchmarkResolveDesc(b *testing.B) {
	entryPoints, err := Reflect(FromWords(largeModule()))
	if err != nil {
		b.Fatalf("reflect failed: %v", err)
	}
	m := entryPoints[0].Manifest
	symbols := []string{"ubo7.b", "1.3.0", "ubo63", "3.15.a"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, s := range symbols {
			if _, ok := m.ResolveDesc(s); !ok {
				b.Fatalf("cannot resolve %q", s)
			}
		}
	}
}

// BenchmarkMerge measures merging the manifests of two stages.
func BenchmarkMerge(b *testing.B) {
	entryPoints, err := Reflect(FromWords(mediumModule()))
	if err != nil {
		b.Fatalf("reflect failed: %v", err)
	}
	vs, fs := entryPoints[0].Manifest, entryPoints[1].Manifest
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := vs.Merge(fs); err != nil {
			b.Fatalf("merge failed: %v", err)
		}
	}
}

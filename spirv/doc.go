// Package spirv provides the binary-level building blocks used to reflect
// SPIR-V modules.
//
// # Reading
//
// A module is a sequence of 32-bit words. Raw bytes are converted with
// WordsFromBytes, which detects the byte order from the magic number:
//
//	words := spirv.WordsFromBytes(data)
//	reader := spirv.NewReader(words)
//	for {
//		inst, err := reader.Next()
//		if err == io.EOF {
//			break
//		}
//		...
//	}
//
// The Reader only splits words into instructions. Typed views such as
// DecodeEntryPoint or DecodeTypeImage check minimal operand counts, string
// termination and enumeration encodings.
//
// # Binary Writer
//
// ModuleBuilder assembles modules programmatically. Instructions are kept
// per logical-layout section, so callers may add them in any order:
//
//	builder := spirv.NewModuleBuilder(spirv.Version1_3)
//	builder.AddCapability(spirv.CapabilityShader)
//	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//
//	floatType := builder.AddTypeFloat(32)
//	vec4Type := builder.AddTypeVector(floatType, 4)
//
//	words := builder.BuildWords()
//
// # Errors
//
// Every failure is an *Error with a Kind of ErrCorrupted, ErrUnsupported or
// ErrMismatched. The package-level sentinels (ErrIDCollision,
// ErrTypeNotFound, ...) are matched with errors.Is.
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv

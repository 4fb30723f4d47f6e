// Package spvreflect extracts the resource interface of SPIR-V shader
// modules.
//
// For every entry point of a module it reports the input and output
// interface variables, the descriptor resources and the push-constant block
// that the entry point actually uses, together with their reflected types
// and memory layouts:
//
//	entryPoints, err := spvreflect.Reflect(spvreflect.FromBytes(data))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ep := range entryPoints {
//	    for _, desc := range ep.Descs() {
//	        fmt.Println(ep.Name, desc.Binding, desc.Desc)
//	    }
//	}
//
// Variables are addressed with symbols, see package sym:
//
//	res, ok := ep.ResolveDesc("light.0")
//
// Manifests of consecutive pipeline stages combine with Merge.
package spvreflect

import (
	"encoding/binary"
	"slices"

	"github.com/gogpu/spvreflect/spirv"
)

// Options configures reflection.
type Options struct {
	// IncludeBuiltins reports variables decorated BuiltIn. They are
	// omitted by default since the pipeline provides them.
	IncludeBuiltins bool

	// ReferenceAllResources reports every classified variable of the
	// module for each entry point, whether the entry point reaches it or
	// not.
	ReferenceAllResources bool
}

// DefaultOptions returns the options used by Reflect.
func DefaultOptions() Options {
	return Options{
		IncludeBuiltins:       false,
		ReferenceAllResources: false,
	}
}

// Binary is a SPIR-V module as a sequence of words in host order.
type Binary struct {
	words []uint32
}

// FromWords wraps a copy of words.
func FromWords(words []uint32) Binary {
	return Binary{words: slices.Clone(words)}
}

// FromBytes decodes a module from its serialized form. The byte order is
// taken from the magic number; unrecognized input yields an empty binary.
func FromBytes(data []byte) Binary {
	return Binary{words: spirv.WordsFromBytes(data)}
}

// Words returns a copy of the module words.
func (b Binary) Words() []uint32 {
	return slices.Clone(b.words)
}

// Bytes serializes the module in little-endian byte order.
func (b Binary) Bytes() []byte {
	return spirv.EncodeWords(b.words, binary.LittleEndian)
}

// Reflect reflects every entry point of b using DefaultOptions.
//
// Variables decorated BuiltIn are left out by default, although they are
// Input and Output variables; set Options.IncludeBuiltins to classify them
// with every other interface variable.
func Reflect(b Binary) ([]EntryPoint, error) {
	return ReflectWithOptions(b, DefaultOptions())
}

// ReflectWithOptions reflects every entry point of b.
//
// Reflection is performed in ordered passes over the logical layout of the
// module:
//  1. Entry points and execution modes
//  2. Debug names
//  3. Decorations
//  4. Types, constants and global variables
//  5. Function bodies, building the call graph
//
// Entry points are returned in declaration order. Any failure aborts the
// whole call; the returned error is a *spirv.Error.
func ReflectWithOptions(b Binary, opts Options) ([]EntryPoint, error) {
	r := newReflector(b.words, opts)
	if err := r.run(); err != nil {
		return nil, err
	}
	return r.entryPoints()
}

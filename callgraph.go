package spvreflect

import (
	"maps"
	"slices"

	"github.com/gogpu/spvreflect/spirv"
)

// function records what a function body touches.
type function struct {
	accessed map[uint32]struct{}
	calls    map[uint32]struct{}
}

type callGraph struct {
	functions map[uint32]*function
	chains    map[uint32]uint32 // access chain result -> root base
}

func newCallGraph() callGraph {
	return callGraph{
		functions: make(map[uint32]*function),
		chains:    make(map[uint32]uint32),
	}
}

// pointerOperands lists, per opcode, the operand positions holding a
// pointer the instruction reads or writes.
var pointerOperands = map[spirv.OpCode][]int{
	spirv.OpCopyMemory:                {0, 1},
	spirv.OpArrayLength:               {2},
	spirv.OpImageTexelPointer:         {2},
	spirv.OpAtomicLoad:                {2},
	spirv.OpAtomicStore:               {0},
	spirv.OpAtomicExchange:            {2},
	spirv.OpAtomicCompareExchange:     {2},
	spirv.OpAtomicCompareExchangeWeak: {2},
	spirv.OpAtomicIIncrement:          {2},
	spirv.OpAtomicIDecrement:          {2},
	spirv.OpAtomicIAdd:                {2},
	spirv.OpAtomicISub:                {2},
	spirv.OpAtomicSMin:                {2},
	spirv.OpAtomicUMin:                {2},
	spirv.OpAtomicSMax:                {2},
	spirv.OpAtomicUMax:                {2},
	spirv.OpAtomicAnd:                 {2},
	spirv.OpAtomicOr:                  {2},
	spirv.OpAtomicXor:                 {2},
}

// populateFunctions scans function bodies for calls and variable
// accesses. Instructions outside a function body are ignored.
func (r *reflector) populateFunctions() error {
	var current *function
	return r.scan(func(spirv.OpCode) bool { return true }, func(inst spirv.Instruction) error {
		switch inst.Opcode {
		case spirv.OpFunction:
			op, err := spirv.DecodeFunction(inst)
			if err != nil {
				return err
			}
			current = r.graph.function(op.Result)
			return nil
		case spirv.OpFunctionEnd:
			current = nil
			return nil
		}
		if current == nil {
			return nil
		}
		return r.graph.record(current, inst)
	})
}

func (g callGraph) function(id uint32) *function {
	fn, ok := g.functions[id]
	if !ok {
		fn = &function{
			accessed: make(map[uint32]struct{}),
			calls:    make(map[uint32]struct{}),
		}
		g.functions[id] = fn
	}
	return fn
}

func (g callGraph) record(fn *function, inst spirv.Instruction) error {
	switch inst.Opcode {
	case spirv.OpFunctionCall:
		op, err := spirv.DecodeFunctionCall(inst)
		if err != nil {
			return err
		}
		fn.calls[op.Function] = struct{}{}
		// Pointer arguments hand the caller's variables to the callee.
		for _, arg := range op.Arguments {
			fn.accessed[g.root(arg)] = struct{}{}
		}
	case spirv.OpLoad, spirv.OpStore:
		op, err := spirv.DecodeMemory(inst)
		if err != nil {
			return err
		}
		fn.accessed[g.root(op.Pointer)] = struct{}{}
	case spirv.OpAccessChain, spirv.OpInBoundsAccessChain,
		spirv.OpPtrAccessChain, spirv.OpInBoundsPtrAccessChain:
		op, err := spirv.DecodeAccessChain(inst)
		if err != nil {
			return err
		}
		if _, ok := g.chains[op.Result]; ok {
			return spirv.ErrIDCollision
		}
		g.chains[op.Result] = g.root(op.Base)
	default:
		positions, ok := pointerOperands[inst.Opcode]
		if !ok {
			return nil
		}
		for _, pos := range positions {
			if pos >= len(inst.Words) {
				return spirv.ErrInstrTooShort
			}
			fn.accessed[g.root(inst.Words[pos])] = struct{}{}
		}
	}
	return nil
}

// root collapses a chain of access chains to the variable it starts from.
func (g callGraph) root(id uint32) uint32 {
	if base, ok := g.chains[id]; ok {
		return base
	}
	return id
}

// reachableVars returns, in ascending order, the ids of the variables in
// vars accessed by entry or any function it transitively calls. Recursive
// call graphs are visited once per function.
func (g callGraph) reachableVars(entry uint32, vars map[uint32]variable) []uint32 {
	visited := make(map[uint32]bool)
	found := make(map[uint32]variable)
	stack := []uint32{entry}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		fn, ok := g.functions[id]
		if !ok {
			continue
		}
		for v := range fn.accessed {
			if decl, ok := vars[v]; ok {
				found[v] = decl
			}
		}
		for callee := range fn.calls {
			if !visited[callee] {
				stack = append(stack, callee)
			}
		}
	}
	return sortedKeys(found)
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	return slices.Sorted(maps.Keys(m))
}

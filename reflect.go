package spvreflect

import (
	"errors"
	"io"
	"slices"

	"github.com/gogpu/spvreflect/spirv"
	"github.com/gogpu/spvreflect/types"
)

// section is a logical layout section of a module.
type section uint8

const (
	sectionCapability section = iota
	sectionExtension
	sectionExtInstImport
	sectionMemoryModel
	sectionEntryPoint
	sectionExecutionMode
	sectionDebugSource
	sectionDebugName
	sectionModuleProcessed
	sectionAnnotation
	sectionDeclaration
	sectionFunction
)

var sections = map[spirv.OpCode]section{
	spirv.OpNop:                  sectionCapability,
	spirv.OpCapability:           sectionCapability,
	spirv.OpExtension:            sectionExtension,
	spirv.OpExtInstImport:        sectionExtInstImport,
	spirv.OpMemoryModel:          sectionMemoryModel,
	spirv.OpEntryPoint:           sectionEntryPoint,
	spirv.OpExecutionMode:        sectionExecutionMode,
	spirv.OpExecutionModeID:      sectionExecutionMode,
	spirv.OpString:               sectionDebugSource,
	spirv.OpSource:               sectionDebugSource,
	spirv.OpSourceExtension:      sectionDebugSource,
	spirv.OpSourceContinued:      sectionDebugSource,
	spirv.OpName:                 sectionDebugName,
	spirv.OpMemberName:           sectionDebugName,
	spirv.OpModuleProcessed:      sectionModuleProcessed,
	spirv.OpDecorate:             sectionAnnotation,
	spirv.OpMemberDecorate:       sectionAnnotation,
	spirv.OpDecorationGroup:      sectionAnnotation,
	spirv.OpGroupDecorate:        sectionAnnotation,
	spirv.OpGroupMemberDecorate:  sectionAnnotation,
	spirv.OpDecorateID:           sectionAnnotation,
	spirv.OpDecorateString:       sectionAnnotation,
	spirv.OpMemberDecorateString: sectionAnnotation,
	spirv.OpVariable:             sectionDeclaration,
	spirv.OpUndef:                sectionDeclaration,
	spirv.OpLine:                 sectionDeclaration,
	spirv.OpNoLine:               sectionDeclaration,
	spirv.OpExtInst:              sectionDeclaration,
}

func sectionOf(op spirv.OpCode) section {
	if s, ok := sections[op]; ok {
		return s
	}
	if isTypeOp(op) || isConstantOp(op) {
		return sectionDeclaration
	}
	return sectionFunction
}

func isTypeOp(op spirv.OpCode) bool {
	return (op >= spirv.OpTypeVoid && op <= spirv.OpTypeForwardPointer) ||
		op == spirv.OpTypeRayQueryKHR || op == spirv.OpTypeAccelerationStruct
}

func isConstantOp(op spirv.OpCode) bool {
	return (op >= spirv.OpConstantTrue && op <= spirv.OpConstantNull) ||
		(op >= spirv.OpSpecConstantTrue && op <= spirv.OpSpecConstantOp)
}

type nameKey struct {
	id       uint32
	member   uint32
	isMember bool
}

type decoKey struct {
	id       uint32
	member   uint32
	isMember bool
	deco     spirv.Decoration
}

type variableKind uint8

const (
	varInput variableKind = iota
	varOutput
	varDescriptor
)

// variable is a classified global variable.
type variable struct {
	kind     variableKind
	location InterfaceLocation
	typ      types.Type
	binding  DescriptorBinding
	desc     types.DescriptorType
}

type constant struct {
	typeID uint32
	value  []uint32
}

// reflector holds the call-local tables built by the passes.
type reflector struct {
	reader *spirv.Reader
	opts   Options

	entries []spirv.EntryPointOp
	modes   map[uint32][]ExecutionMode
	names   map[nameKey]string
	decos   map[decoKey][]uint32

	declared  map[uint32]bool
	types     map[uint32]types.Type
	elements  map[uint32]uint32 // array type -> element type
	pointers  map[uint32]uint32 // pointer type -> pointee type
	constants map[uint32]constant
	vars      map[uint32]variable

	graph callGraph
}

func newReflector(words []uint32, opts Options) *reflector {
	return &reflector{
		reader:    spirv.NewReader(words),
		opts:      opts,
		modes:     make(map[uint32][]ExecutionMode),
		names:     make(map[nameKey]string),
		decos:     make(map[decoKey][]uint32),
		declared:  make(map[uint32]bool),
		types:     make(map[uint32]types.Type),
		elements:  make(map[uint32]uint32),
		pointers:  make(map[uint32]uint32),
		constants: make(map[uint32]constant),
		vars:      make(map[uint32]variable),
		graph:     newCallGraph(),
	}
}

// run executes the passes in logical layout order.
func (r *reflector) run() error {
	steps := []struct {
		from section
		pass func() error
	}{
		{sectionEntryPoint, r.populateEntryPoints},
		{sectionExecutionMode, r.populateExecutionModes},
		{sectionDebugName, r.populateNames},
		{sectionAnnotation, r.populateDecorations},
		{sectionDeclaration, r.populateDeclarations},
		{sectionFunction, r.populateFunctions},
	}
	for _, step := range steps {
		if err := r.skipBefore(step.from); err != nil {
			return err
		}
		if err := step.pass(); err != nil {
			return err
		}
	}
	return nil
}

// skipBefore discards instructions of sections preceding s.
func (r *reflector) skipBefore(s section) error {
	for {
		inst, err := r.reader.Peek()
		if err != nil {
			return eofOK(err)
		}
		if sectionOf(inst.Opcode) >= s {
			return nil
		}
		r.reader.Next()
	}
}

// scan feeds handle every instruction while accept holds.
func (r *reflector) scan(accept func(spirv.OpCode) bool, handle func(spirv.Instruction) error) error {
	for {
		inst, err := r.reader.Peek()
		if err != nil {
			return eofOK(err)
		}
		if !accept(inst.Opcode) {
			return nil
		}
		if err := handle(inst); err != nil {
			return err
		}
		r.reader.Next()
	}
}

func eofOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func inSection(s section) func(spirv.OpCode) bool {
	return func(op spirv.OpCode) bool { return sectionOf(op) == s }
}

func (r *reflector) populateEntryPoints() error {
	return r.scan(inSection(sectionEntryPoint), func(inst spirv.Instruction) error {
		op, err := spirv.DecodeEntryPoint(inst)
		if err != nil {
			return err
		}
		r.entries = append(r.entries, op)
		return nil
	})
}

func (r *reflector) populateExecutionModes() error {
	return r.scan(inSection(sectionExecutionMode), func(inst spirv.Instruction) error {
		op, err := spirv.DecodeExecutionMode(inst)
		if err != nil {
			return err
		}
		r.modes[op.EntryPoint] = append(r.modes[op.EntryPoint], ExecutionMode{
			Mode:     op.Mode,
			Operands: slices.Clone(op.Operands),
		})
		return nil
	})
}

func (r *reflector) populateNames() error {
	return r.scan(inSection(sectionDebugName), func(inst spirv.Instruction) error {
		op, err := spirv.DecodeName(inst)
		if err != nil {
			return err
		}
		key := nameKey{id: op.Target, member: op.Member, isMember: op.IsMember}
		if _, ok := r.names[key]; ok {
			return spirv.ErrNameCollision
		}
		r.names[key] = op.Name
		return nil
	})
}

func (r *reflector) populateDecorations() error {
	return r.scan(inSection(sectionAnnotation), func(inst spirv.Instruction) error {
		switch inst.Opcode {
		case spirv.OpDecorationGroup:
			return nil
		case spirv.OpGroupDecorate, spirv.OpGroupMemberDecorate:
			return r.applyGroup(inst)
		}
		op, err := spirv.DecodeDecorate(inst)
		if err != nil {
			return err
		}
		return r.addDecoration(decoKey{
			id:       op.Target,
			member:   op.Member,
			isMember: op.IsMember,
			deco:     op.Decoration,
		}, op.Params)
	})
}

func (r *reflector) addDecoration(key decoKey, params []uint32) error {
	if _, ok := r.decos[key]; ok {
		return spirv.ErrDecoCollision
	}
	r.decos[key] = params
	return nil
}

// applyGroup copies the decorations of a decoration group onto its
// targets. Group decorations always precede their application.
func (r *reflector) applyGroup(inst spirv.Instruction) error {
	if len(inst.Words) < 1 {
		return spirv.ErrInstrTooShort
	}
	group, targets := inst.Words[0], inst.Words[1:]
	var inherited []decoKey
	for key := range r.decos {
		if key.id == group && !key.isMember {
			inherited = append(inherited, key)
		}
	}

	apply := func(target, member uint32, isMember bool) error {
		for _, key := range inherited {
			dst := decoKey{id: target, member: member, isMember: isMember, deco: key.deco}
			if err := r.addDecoration(dst, r.decos[key]); err != nil {
				return err
			}
		}
		return nil
	}
	if inst.Opcode == spirv.OpGroupDecorate {
		for _, target := range targets {
			if err := apply(target, 0, false); err != nil {
				return err
			}
		}
		return nil
	}
	if len(targets)%2 != 0 {
		return spirv.ErrInstrTooShort
	}
	for i := 0; i < len(targets); i += 2 {
		if err := apply(targets[i], targets[i+1], true); err != nil {
			return err
		}
	}
	return nil
}

func (r *reflector) name(id uint32) string {
	return r.names[nameKey{id: id}]
}

func (r *reflector) memberName(id, member uint32) string {
	return r.names[nameKey{id: id, member: member, isMember: true}]
}

func (r *reflector) hasDeco(id uint32, deco spirv.Decoration) bool {
	_, ok := r.decos[decoKey{id: id, deco: deco}]
	return ok
}

func (r *reflector) hasMemberDeco(id, member uint32, deco spirv.Decoration) bool {
	_, ok := r.decos[decoKey{id: id, member: member, isMember: true, deco: deco}]
	return ok
}

// decoU32 returns the first literal of a decoration.
func (r *reflector) decoU32(id uint32, deco spirv.Decoration) (uint32, bool) {
	return first(r.decos[decoKey{id: id, deco: deco}])
}

func (r *reflector) memberDecoU32(id, member uint32, deco spirv.Decoration) (uint32, bool) {
	return first(r.decos[decoKey{id: id, member: member, isMember: true, deco: deco}])
}

func first(params []uint32) (uint32, bool) {
	if len(params) == 0 {
		return 0, false
	}
	return params[0], true
}

// entryPoints assembles the manifest of every declared entry point.
func (r *reflector) entryPoints() ([]EntryPoint, error) {
	out := make([]EntryPoint, 0, len(r.entries))
	for _, decl := range r.entries {
		manifest, err := r.assemble(decl.Function)
		if err != nil {
			return nil, err
		}
		out = append(out, EntryPoint{
			ExecutionModel: decl.ExecutionModel,
			Name:           decl.Name,
			ExecutionModes: r.modes[decl.Function],
			Manifest:       manifest,
		})
	}
	return out, nil
}

// assemble builds the manifest of the function fn from the variables it
// reaches, in ascending id order.
func (r *reflector) assemble(fn uint32) (*Manifest, error) {
	var ids []uint32
	if r.opts.ReferenceAllResources {
		ids = sortedKeys(r.vars)
	} else {
		ids = r.graph.reachableVars(fn, r.vars)
	}

	m := newManifest()
	for _, id := range ids {
		v := r.vars[id]
		var loc Locator
		switch v.kind {
		case varInput:
			m.inputs[v.location] = v.typ
			loc = InputLocator(v.location)
		case varOutput:
			m.outputs[v.location] = v.typ
			loc = OutputLocator(v.location)
		case varDescriptor:
			if _, ok := m.descs[v.binding]; ok {
				return nil, spirv.ErrDescBindCollision
			}
			m.descs[v.binding] = v.desc
			loc = DescriptorLocator(v.binding)
		}

		name := r.name(id)
		if name == "" {
			continue
		}
		if existing, ok := m.names[name]; ok && existing != loc {
			return nil, spirv.ErrNameCollision
		}
		m.names[name] = loc
	}
	return m, nil
}

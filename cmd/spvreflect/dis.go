package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/gogpu/spvreflect/spirv"
)

type disCmd struct{}

func (*disCmd) Name() string             { return "dis" }
func (*disCmd) Synopsis() string         { return "Disassembles a module to text." }
func (*disCmd) Usage() string            { return "spvreflect dis <file.spv>\n" }
func (*disCmd) SetFlags(f *flag.FlagSet) {}

func (cmd *disCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	b, err := readBinary(f.Arg(0))
	if err == nil {
		err = disassemble(os.Stdout, b.Words())
	}
	if err != nil {
		logger(ctx).Error("dis failed", "file", f.Arg(0), "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func id(n uint32) string {
	return fmt.Sprintf("%%%d", n)
}

// disassemble writes words as assembly text, one instruction per line
// with result ids right-aligned before the opcode.
func disassemble(w io.Writer, words []uint32) error {
	if len(words) < spirv.HeaderWords || words[0] != spirv.MagicNumber {
		return fmt.Errorf("not a SPIR-V module")
	}
	var sb strings.Builder
	version := words[1]
	fmt.Fprintf(&sb, "; SPIR-V\n")
	fmt.Fprintf(&sb, "; Version: %d.%d\n", (version>>16)&0xFF, (version>>8)&0xFF)
	fmt.Fprintf(&sb, "; Generator: 0x%08X\n", words[2])
	fmt.Fprintf(&sb, "; Bound: %d\n", words[3])
	fmt.Fprintf(&sb, "; Schema: %d\n", words[4])

	r := spirv.NewReader(words)
	for {
		inst, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("word %d: %w", r.Offset(), err)
		}
		if err := writeInstruction(&sb, inst); err != nil {
			return fmt.Errorf("word %d: %s: %w", r.Offset(), inst.Opcode, err)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeInstruction(sb *strings.Builder, inst spirv.Instruction) error {
	name := inst.Opcode.String()
	ops := inst.Words
	switch inst.Opcode {
	case spirv.OpName, spirv.OpMemberName:
		op, err := spirv.DecodeName(inst)
		if err != nil {
			return err
		}
		if op.IsMember {
			fmt.Fprintf(sb, "               %s %s %d %q\n", name, id(op.Target), op.Member, op.Name)
		} else {
			fmt.Fprintf(sb, "               %s %s %q\n", name, id(op.Target), op.Name)
		}

	case spirv.OpEntryPoint:
		op, err := spirv.DecodeEntryPoint(inst)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "               %s %s %s %q", name, op.ExecutionModel, id(op.Function), op.Name)
		for _, v := range op.Interface {
			fmt.Fprintf(sb, " %s", id(v))
		}
		sb.WriteByte('\n')

	case spirv.OpExecutionMode:
		op, err := spirv.DecodeExecutionMode(inst)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "               %s %s %s", name, id(op.EntryPoint), op.Mode)
		for _, v := range op.Operands {
			fmt.Fprintf(sb, " %d", v)
		}
		sb.WriteByte('\n')

	case spirv.OpTypePointer:
		if len(ops) < 3 {
			return spirv.ErrInstrTooShort
		}
		fmt.Fprintf(sb, "%14s = %s %s %s\n", id(ops[0]), name, spirv.StorageClass(ops[1]), id(ops[2]))

	case spirv.OpVariable:
		op, err := spirv.DecodeVariable(inst)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%14s = %s %s %s\n", id(op.Result), name, id(op.ResultType), op.StorageClass)

	case spirv.OpDecorate, spirv.OpMemberDecorate:
		op, err := spirv.DecodeDecorate(inst)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "               %s %s", name, id(op.Target))
		if op.IsMember {
			fmt.Fprintf(sb, " %d", op.Member)
		}
		fmt.Fprintf(sb, " %d", op.Decoration)
		for _, v := range op.Params {
			fmt.Fprintf(sb, " %d", v)
		}
		sb.WriteByte('\n')

	default:
		writeGeneric(sb, name, inst.Opcode, ops)
	}
	return nil
}

// resultIndex returns the operand position of the result id of op, or -1
// if op has no result.
func resultIndex(op spirv.OpCode) int {
	switch {
	case op >= spirv.OpTypeVoid && op <= spirv.OpTypeForwardPointer,
		op == spirv.OpLabel, op == spirv.OpString, op == spirv.OpExtInstImport,
		op == spirv.OpDecorationGroup:
		return 0
	case op >= spirv.OpConstantTrue && op <= spirv.OpSpecConstantOp,
		op >= spirv.OpFunction && op <= spirv.OpFunctionParameter,
		op == spirv.OpFunctionCall, op == spirv.OpExtInst, op == spirv.OpUndef,
		op >= spirv.OpVariable && op <= spirv.OpLoad,
		op >= spirv.OpAccessChain && op <= spirv.OpInBoundsPtrAccessChain,
		op >= spirv.OpVectorExtractDynamic && op <= spirv.OpBitCount,
		op >= spirv.OpAtomicLoad && op <= spirv.OpAtomicXor && op != spirv.OpAtomicStore,
		op == spirv.OpPhi:
		return 1
	}
	return -1
}

func writeGeneric(sb *strings.Builder, name string, opcode spirv.OpCode, ops []uint32) {
	res := resultIndex(opcode)
	if res < 0 || res >= len(ops) {
		sb.WriteString("               " + name)
		for _, op := range ops {
			fmt.Fprintf(sb, " %s", id(op))
		}
		sb.WriteByte('\n')
		return
	}
	fmt.Fprintf(sb, "%14s = %s", id(ops[res]), name)
	for i, op := range ops {
		if i != res {
			fmt.Fprintf(sb, " %s", id(op))
		}
	}
	sb.WriteByte('\n')
}

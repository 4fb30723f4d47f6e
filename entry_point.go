package spvreflect

import (
	"fmt"

	"github.com/gogpu/spvreflect/spirv"
)

// ExecutionMode is an execution mode declared for an entry point, with its
// literal operands.
type ExecutionMode struct {
	Mode     spirv.ExecutionMode
	Operands []uint32
}

func (m ExecutionMode) String() string {
	if len(m.Operands) == 0 {
		return m.Mode.String()
	}
	return fmt.Sprintf("%s%v", m.Mode, m.Operands)
}

// EntryPoint is a reflected entry point and the resources it uses.
type EntryPoint struct {
	ExecutionModel spirv.ExecutionModel
	Name           string
	ExecutionModes []ExecutionMode

	*Manifest
}

func (e EntryPoint) String() string {
	return fmt.Sprintf("%s %q", e.ExecutionModel, e.Name)
}

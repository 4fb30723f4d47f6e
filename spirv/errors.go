package spirv

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes reflection errors.
type ErrorKind uint8

const (
	// ErrCorrupted indicates a structurally or referentially malformed module.
	ErrCorrupted ErrorKind = iota

	// ErrUnsupported indicates a valid module that uses a feature outside
	// the modeled capability.
	ErrUnsupported

	// ErrMismatched indicates two manifests that cannot be merged.
	ErrMismatched
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrCorrupted:
		return "Corrupted"
	case ErrUnsupported:
		return "Unsupported"
	case ErrMismatched:
		return "Mismatched"
	default:
		return "Unknown"
	}
}

// Error represents a reflection failure. Errors carry a fixed reason and no
// position information.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrCorrupted:
		return fmt.Sprintf("spirv binary is corrupted: %s", e.Message)
	case ErrUnsupported:
		return fmt.Sprintf("spirv binary used unsupported feature: %s", e.Message)
	default:
		return e.Message
	}
}

// NewError creates a new reflection error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Sentinel errors. Compare with errors.Is.
var (
	ErrInstrTooShort     = NewError(ErrCorrupted, "instruction is too short")
	ErrStrNotTerminated  = NewError(ErrCorrupted, "instruction has a string operand that is not terminated by nul")
	ErrUnencodedEnum     = NewError(ErrCorrupted, "instruction has a unencoded enumeration value")
	ErrIDCollision       = NewError(ErrCorrupted, "id can only be assigned once")
	ErrNameCollision     = NewError(ErrCorrupted, "item can only be named once")
	ErrDecoCollision     = NewError(ErrCorrupted, "item can only be decorated of a kind once")
	ErrMissingDecoration = NewError(ErrCorrupted, "missing decoration")
	ErrTypeNotFound      = NewError(ErrCorrupted, "cannot find a suitable type")
	ErrConstNotFound     = NewError(ErrCorrupted, "cannot find a suitable constant")
	// ErrUndeclaredVar classifies accesses to ids that are not variables.
	// Reflection never returns it: such accesses reach function parameters
	// and locals, so they are filtered out of the call graph instead.
	ErrUndeclaredVar     = NewError(ErrCorrupted, "accessing undeclared variable")
	ErrDescBindCollision = NewError(ErrCorrupted, "descriptor binding cannot be shared")
	ErrMatrixAxisOrder   = NewError(ErrCorrupted, "uncertain matrix axis order")

	ErrUnsupportedType        = NewError(ErrUnsupported, "unsupported type")
	ErrUnsupportedImageConfig = NewError(ErrUnsupported, "unsupported image configuration")

	ErrMismatchedManifest = NewError(ErrMismatched, "mismatched manifest cannot be merged")
)

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsCorrupted returns true if err is an ErrCorrupted error.
func IsCorrupted(err error) bool {
	return isKind(err, ErrCorrupted)
}

// IsUnsupported returns true if err is an ErrUnsupported error.
func IsUnsupported(err error) bool {
	return isKind(err, ErrUnsupported)
}

// IsMismatched returns true if err is an ErrMismatched error.
func IsMismatched(err error) bool {
	return isKind(err, ErrMismatched)
}

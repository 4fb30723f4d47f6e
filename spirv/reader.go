package spirv

import "io"

// Reader splits a module into instructions. It scans forward only; the
// header is skipped on construction.
type Reader struct {
	words []uint32
	pos   int
}

// NewReader creates a reader over a complete module, header included.
// Modules shorter than the header have no instructions.
func NewReader(words []uint32) *Reader {
	if len(words) < HeaderWords {
		return &Reader{}
	}
	return &Reader{words: words, pos: HeaderWords}
}

// Peek returns the next instruction without consuming it.
// It returns io.EOF once every instruction has been read.
func (r *Reader) Peek() (Instruction, error) {
	inst, _, err := r.decode()
	return inst, err
}

// Next returns the next instruction and advances past it.
func (r *Reader) Next() (Instruction, error) {
	inst, size, err := r.decode()
	if err != nil {
		return Instruction{}, err
	}
	r.pos += size
	return inst, nil
}

// Offset returns the word offset of the next instruction.
func (r *Reader) Offset() int {
	return r.pos
}

func (r *Reader) decode() (Instruction, int, error) {
	if r.pos >= len(r.words) {
		return Instruction{}, 0, io.EOF
	}
	head := r.words[r.pos]
	wordCount := int(head >> 16)
	if wordCount == 0 || r.pos+wordCount > len(r.words) {
		return Instruction{}, 0, ErrInstrTooShort
	}
	inst := Instruction{
		Opcode: OpCode(head & 0xFFFF),
		Words:  r.words[r.pos+1 : r.pos+wordCount : r.pos+wordCount],
	}
	return inst, wordCount, nil
}

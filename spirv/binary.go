package spirv

import "encoding/binary"

// WordsFromBytes converts a byte buffer into SPIR-V words.
//
// The byte order is taken from the first byte, which is the low byte of the
// magic number in either order: 0x03 selects little-endian and 0x07
// big-endian. An empty buffer, or one starting with any other byte, yields
// no words. Trailing bytes that do not fill a word are dropped.
func WordsFromBytes(data []byte) []uint32 {
	if len(data) == 0 {
		return nil
	}
	var order binary.ByteOrder
	switch data[0] {
	case 0x03:
		order = binary.LittleEndian
	case 0x07:
		order = binary.BigEndian
	default:
		return nil
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[i*4:])
	}
	return words
}

// EncodeWords serializes words with the given byte order.
func EncodeWords(words []uint32, order binary.ByteOrder) []byte {
	buffer := make([]byte, len(words)*4)
	for i, word := range words {
		order.PutUint32(buffer[i*4:], word)
	}
	return buffer
}

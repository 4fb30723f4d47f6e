package types

import (
	"hash/fnv"
	"strconv"
)

// Key returns a string that identifies t by structure. Two types have the
// same key exactly when they have the same shape, names, offsets and
// layout.
func Key(t Type) string {
	return string(appendKey(make([]byte, 0, 64), t))
}

// DescriptorKey is Key for descriptor types.
func DescriptorKey(d DescriptorType) string {
	b := make([]byte, 0, 64)
	switch d := d.(type) {
	case UniformBuffer:
		b = append(b, "ubo:"...)
		b = strconv.AppendUint(b, uint64(d.BindCount), 10)
		b = append(b, ':')
		b = appendKey(b, d.Struct)
	case StorageBuffer:
		b = append(b, "ssbo:"...)
		b = strconv.AppendUint(b, uint64(d.BindCount), 10)
		b = append(b, ':')
		b = appendKey(b, d.Struct)
	case PushConstantBlock:
		b = append(b, "push:"...)
		b = appendKey(b, d.Struct)
	case ImageDescriptor:
		b = append(b, "img:"...)
		b = appendKey(b, d.Type)
	case SamplerDescriptor:
		b = append(b, "sampler:"...)
		b = strconv.AppendUint(b, uint64(d.BindCount), 10)
	case InputAttachment:
		b = append(b, "attachment:"...)
		b = strconv.AppendUint(b, uint64(d.Index), 10)
	}
	return string(b)
}

// Hash returns a 64-bit FNV-1a hash of Key(t).
func Hash(t Type) uint64 {
	return hashKey(Key(t))
}

// DescriptorHash returns a 64-bit FNV-1a hash of DescriptorKey(d).
func DescriptorHash(d DescriptorType) uint64 {
	return hashKey(DescriptorKey(d))
}

func hashKey(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}

func appendKey(b []byte, t Type) []byte {
	switch t := t.(type) {
	case ScalarType:
		b = append(b, "scalar:"...)
		b = strconv.AppendInt(b, int64(t.Kind), 10)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(t.Width), 10)
	case VectorType:
		b = append(b, "vec:"...)
		b = strconv.AppendUint(b, uint64(t.Count), 10)
		b = append(b, ':')
		b = appendKey(b, t.Scalar)
	case MatrixType:
		b = append(b, "mat:"...)
		b = strconv.AppendUint(b, uint64(t.Count), 10)
		b = append(b, ':')
		b = appendKey(b, t.Vector)
		if t.Layout != nil {
			b = append(b, ":layout:"...)
			b = strconv.AppendInt(b, int64(t.Layout.AxisOrder), 10)
			b = append(b, ':')
			b = strconv.AppendUint(b, uint64(t.Layout.Stride), 10)
		}
	case ArrayType:
		b = append(b, "array:"...)
		b = strconv.AppendUint(b, uint64(t.Count), 10)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(t.Stride), 10)
		b = append(b, ':')
		b = appendKey(b, t.Element)
	case StructType:
		b = append(b, "struct{"...)
		for i, m := range t.Members {
			if i > 0 {
				b = append(b, ',')
			}
			b = strconv.AppendQuote(b, m.Name)
			b = append(b, '@')
			b = strconv.AppendUint(b, uint64(m.Offset), 10)
			b = append(b, ':')
			b = appendKey(b, m.Type)
		}
		b = append(b, '}')
	case ImageType:
		b = append(b, "image:"...)
		b = strconv.AppendInt(b, int64(t.Arrangement), 10)
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(t.Unit.Kind), 10)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(t.Unit.Format), 10)
	case SamplerType:
		b = append(b, "sampler"...)
	case SubpassDataType:
		b = append(b, "subpass"...)
	}
	return b
}

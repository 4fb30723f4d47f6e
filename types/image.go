package types

import (
	"fmt"

	"github.com/gogpu/spvreflect/spirv"
)

// ImageUnitKind tells how texels of an image are accessed.
type ImageUnitKind uint8

const (
	// ImageUnitSampled is a sampled image with an implementation-defined
	// texel format.
	ImageUnitSampled ImageUnitKind = iota
	// ImageUnitDepth is a sampled depth image.
	ImageUnitDepth
	// ImageUnitColor is a storage image with an explicit texel format.
	ImageUnitColor
)

// ImageUnitFormat describes the texel unit of an image. Format is only
// meaningful for ImageUnitColor.
type ImageUnitFormat struct {
	Kind   ImageUnitKind
	Format spirv.ImageFormat
}

func (f ImageUnitFormat) String() string {
	switch f.Kind {
	case ImageUnitDepth:
		return "depth"
	case ImageUnitColor:
		return f.Format.String()
	default:
		return "sampled"
	}
}

// NewImageUnitFormat derives the unit format from the Sampled, Depth and
// Image Format operands of OpTypeImage. A depth operand of 2 (unknown) is
// treated as a color image.
func NewImageUnitFormat(sampled, depth uint32, format spirv.ImageFormat) (ImageUnitFormat, error) {
	switch {
	case sampled == 1 && depth == 1:
		return ImageUnitFormat{Kind: ImageUnitDepth}, nil
	case sampled == 1:
		return ImageUnitFormat{Kind: ImageUnitSampled}, nil
	case sampled == 2 && depth != 1:
		return ImageUnitFormat{Kind: ImageUnitColor, Format: format}, nil
	default:
		return ImageUnitFormat{}, spirv.ErrUnsupportedImageConfig
	}
}

// ImageArrangement is the dimensionality and layering of an image.
type ImageArrangement uint8

const (
	Image1D ImageArrangement = iota
	Image2D
	Image2DMS
	Image3D
	CubeMap
	Image1DArray
	Image2DArray
	Image2DMSArray
	CubeMapArray
	Image2DRect
	ImageBuffer
)

var arrangementNames = [...]string{
	Image1D:        "1d",
	Image2D:        "2d",
	Image2DMS:      "2d_ms",
	Image3D:        "3d",
	CubeMap:        "cube",
	Image1DArray:   "1d_array",
	Image2DArray:   "2d_array",
	Image2DMSArray: "2d_ms_array",
	CubeMapArray:   "cube_array",
	Image2DRect:    "2d_rect",
	ImageBuffer:    "buffer",
}

func (a ImageArrangement) String() string {
	if int(a) < len(arrangementNames) {
		return arrangementNames[a]
	}
	return fmt.Sprintf("ImageArrangement(%d)", uint8(a))
}

type arrangementKey struct {
	dim         spirv.Dim
	arrayed, ms bool
}

var arrangements = map[arrangementKey]ImageArrangement{
	{spirv.Dim1D, false, false}:     Image1D,
	{spirv.Dim1D, true, false}:      Image1DArray,
	{spirv.Dim2D, false, false}:     Image2D,
	{spirv.Dim2D, false, true}:      Image2DMS,
	{spirv.Dim2D, true, false}:      Image2DArray,
	{spirv.Dim2D, true, true}:       Image2DMSArray,
	{spirv.Dim3D, false, false}:     Image3D,
	{spirv.DimCube, false, false}:   CubeMap,
	{spirv.DimCube, true, false}:    CubeMapArray,
	{spirv.DimRect, false, false}:   Image2DRect,
	{spirv.DimBuffer, false, false}: ImageBuffer,
}

// NewImageArrangement derives the arrangement from the Dim, Arrayed and MS
// operands of OpTypeImage.
func NewImageArrangement(dim spirv.Dim, arrayed, multisampled bool) (ImageArrangement, error) {
	if a, ok := arrangements[arrangementKey{dim, arrayed, multisampled}]; ok {
		return a, nil
	}
	return 0, spirv.ErrUnsupportedImageConfig
}

// ImageType represents sampled and storage images. Combined image samplers
// reflect as their image type.
type ImageType struct {
	Unit        ImageUnitFormat
	Arrangement ImageArrangement
}

func (ImageType) typeNode() {}

func (t ImageType) String() string {
	return fmt.Sprintf("image<%s, %s>", t.Arrangement, t.Unit)
}

// Size implements Type. Images are opaque handles.
func (ImageType) Size() (uint32, bool) { return 0, false }

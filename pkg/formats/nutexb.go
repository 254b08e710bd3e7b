package formats

import (
	"encoding/json"
	"fmt"
)

// ImageFormat is a nutexb surface format. Values match the format field in
// the nutexb footer.
type ImageFormat uint32

const (
	FormatR8Unorm           ImageFormat = 0x0100
	FormatR8G8B8A8Unorm     ImageFormat = 0x0400
	FormatR8G8B8A8Srgb      ImageFormat = 0x0405
	FormatR32G32B32A32Float ImageFormat = 0x0434
	FormatB8G8R8A8Unorm     ImageFormat = 0x0450
	FormatB8G8R8A8Srgb      ImageFormat = 0x0455
	FormatBC1Unorm          ImageFormat = 0x0480
	FormatBC1Srgb           ImageFormat = 0x0485
	FormatBC2Unorm          ImageFormat = 0x0490
	FormatBC2Srgb           ImageFormat = 0x0495
	FormatBC3Unorm          ImageFormat = 0x04a0
	FormatBC3Srgb           ImageFormat = 0x04a5
	FormatBC4Unorm          ImageFormat = 0x0180
	FormatBC4Snorm          ImageFormat = 0x0185
	FormatBC5Unorm          ImageFormat = 0x0280
	FormatBC5Snorm          ImageFormat = 0x0285
	FormatBC6Ufloat         ImageFormat = 0x04d7
	FormatBC6Sfloat         ImageFormat = 0x04d8
	FormatBC7Unorm          ImageFormat = 0x04e0
	FormatBC7Srgb           ImageFormat = 0x04e5
)

var imageFormatNames = map[ImageFormat]string{
	FormatR8Unorm:           "R8Unorm",
	FormatR8G8B8A8Unorm:     "R8G8B8A8Unorm",
	FormatR8G8B8A8Srgb:      "R8G8B8A8Srgb",
	FormatR32G32B32A32Float: "R32G32B32A32Float",
	FormatB8G8R8A8Unorm:     "B8G8R8A8Unorm",
	FormatB8G8R8A8Srgb:      "B8G8R8A8Srgb",
	FormatBC1Unorm:          "BC1Unorm",
	FormatBC1Srgb:           "BC1Srgb",
	FormatBC2Unorm:          "BC2Unorm",
	FormatBC2Srgb:           "BC2Srgb",
	FormatBC3Unorm:          "BC3Unorm",
	FormatBC3Srgb:           "BC3Srgb",
	FormatBC4Unorm:          "BC4Unorm",
	FormatBC4Snorm:          "BC4Snorm",
	FormatBC5Unorm:          "BC5Unorm",
	FormatBC5Snorm:          "BC5Snorm",
	FormatBC6Ufloat:         "BC6Ufloat",
	FormatBC6Sfloat:         "BC6Sfloat",
	FormatBC7Unorm:          "BC7Unorm",
	FormatBC7Srgb:           "BC7Srgb",
}

// String returns the format name as used by nutexb tooling.
func (f ImageFormat) String() string {
	if name, ok := imageFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ImageFormat(0x%04x)", uint32(f))
}

// IsSRGB reports whether the format is one of the sRGB tagged variants.
func (f ImageFormat) IsSRGB() bool {
	switch f {
	case FormatR8G8B8A8Srgb, FormatB8G8R8A8Srgb,
		FormatBC1Srgb, FormatBC2Srgb, FormatBC3Srgb, FormatBC7Srgb:
		return true
	default:
		return false
	}
}

// MarshalJSON writes the format name.
func (f ImageFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts the format name form.
func (f *ImageFormat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for format, name := range imageFormatNames {
		if name == s {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("unknown image format %q", s)
}

// TextureDimension classifies a texture by shape.
type TextureDimension int

const (
	TextureDimension2D TextureDimension = iota
	TextureDimension3D
	TextureDimensionCube
)

// String returns the dimension name used in diagnostics.
func (d TextureDimension) String() string {
	switch d {
	case TextureDimension3D:
		return "Texture3d"
	case TextureDimensionCube:
		return "TextureCube"
	default:
		return "Texture2d"
	}
}

// ExpectedTextureDimension returns the dimension a texture parameter
// requires. Texture2, Texture7 and Texture8 are the cube map slots.
func ExpectedTextureDimension(p ParamID) TextureDimension {
	switch p {
	case ParamTexture2, ParamTexture7, ParamTexture8:
		return TextureDimensionCube
	default:
		return TextureDimension2D
	}
}

// NutexbFooter carries the surface description from the end of a nutexb
// file. Pixel data stays with the binary tooling.
type NutexbFooter struct {
	Name        string      `json:"name"`
	Width       uint32      `json:"width"`
	Height      uint32      `json:"height"`
	Depth       uint32      `json:"depth"`
	ImageFormat ImageFormat `json:"image_format"`
	MipmapCount uint32      `json:"mipmap_count"`
	LayerCount  uint32      `json:"layer_count"`
}

// Nutexb is a texture file (.nutexb).
type Nutexb struct {
	Footer NutexbFooter `json:"footer"`
}

// Dimension derives the texture shape from the footer. Array layers other
// than the six cube faces are not distinguished.
func (n *Nutexb) Dimension() TextureDimension {
	if n.Footer.Depth > 1 {
		return TextureDimension3D
	}
	if n.Footer.LayerCount == 6 {
		return TextureDimensionCube
	}
	return TextureDimension2D
}

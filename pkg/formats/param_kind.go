package formats

// ParamKind is the semantic classification of a material parameter slot.
// Every ParamID classifies as exactly one kind; identifiers outside the
// known blocks classify as KindUnknown and are ignored by reconciliation
// and validation.
type ParamKind int

const (
	KindUnknown ParamKind = iota
	KindBoolean
	KindFloat
	KindVector4
	KindTexture
	KindSampler
	KindBlendState
	KindRasterizerState
)

// String returns a short kind name for display.
func (k ParamKind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindFloat:
		return "Float"
	case KindVector4:
		return "Vector4"
	case KindTexture:
		return "Texture"
	case KindSampler:
		return "Sampler"
	case KindBlendState:
		return "BlendState"
	case KindRasterizerState:
		return "RasterizerState"
	default:
		return "Unknown"
	}
}

// Kind classifies the parameter.
func (p ParamID) Kind() ParamKind {
	switch {
	case p >= paramBlendStateBase && p < paramBlendStateBase+blendStateCount:
		return KindBlendState
	case p >= paramRasterizerStateBase && p < paramRasterizerStateBase+rasterizerStateCount:
		return KindRasterizerState
	case p >= paramCustomBooleanBase && p < paramCustomBooleanBase+booleanCount:
		return KindBoolean
	case p >= paramCustomFloatBase && p < paramCustomFloatBase+floatCount:
		return KindFloat
	case p >= paramCustomVectorBase && p < paramCustomVectorBase+vectorCount:
		return KindVector4
	case p >= paramSamplerBase && p < paramSamplerBase+samplerCount:
		return KindSampler
	case p >= paramTextureBase && p < paramTextureBase+textureCount:
		return KindTexture
	default:
		return KindUnknown
	}
}

// DefaultTexture returns the neutral placeholder texture for a texture
// parameter. The defaults are chosen to have as close as possible to no
// visual effect, so fewer textures need manual assignment.
func DefaultTexture(p ParamID) string {
	switch p {
	case ParamTexture2, ParamTexture7, ParamTexture8:
		return "#replace_cubemap"
	case ParamTexture4:
		return "/common/shader/sfxpbs/fighter/default_normal"
	case ParamTexture6:
		return "/common/shader/sfxpbs/fighter/default_params"
	case ParamTexture5, ParamTexture9, ParamTexture14:
		return "/common/shader/sfxpbs/default_black"
	default:
		return "/common/shader/sfxpbs/default_white"
	}
}

// ExpectsSRGB reports whether a texture parameter expects an sRGB encoded
// texture. Normal maps, PRM maps, and the cube map slots store linear data
// and render inaccurately with sRGB.
func ExpectsSRGB(p ParamID) bool {
	switch p {
	case ParamTexture2, ParamTexture4, ParamTexture6, ParamTexture7, ParamTexture16:
		return false
	default:
		return true
	}
}

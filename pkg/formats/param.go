// Package formats defines the in-memory data model for SSBH model folder
// files (matl, mesh, modl, adj, skel, anim, hlpb, meshex, nutexb) and the
// material parameter identifier space shared by all of them.
//
// Binary (de)serialization is handled by external tooling. Files enter this
// package as already-parsed records, typically from the JSON dump form
// produced by ssbh_data_json.
package formats

import (
	"fmt"
	"strconv"
	"strings"
)

// ParamID identifies one material parameter slot. The numeric encoding is
// stable and defines the canonical sort order of parameters within a
// material entry. IDs are grouped in contiguous blocks per parameter kind.
type ParamID uint16

// Legacy parameters retained from older shading systems. Modern shader
// programs never declare these; they classify as KindUnknown.
const (
	ParamDiffuse ParamID = iota
	ParamSpecular
	ParamAmbient
	ParamBlendMap
	ParamTransparency
)

// Block bases. Each kind occupies a contiguous range starting at its base.
const (
	paramBlendStateBase      ParamID = 0x010
	paramRasterizerStateBase ParamID = 0x020
	paramCustomBooleanBase   ParamID = 0x040
	paramCustomFloatBase     ParamID = 0x060
	paramCustomVectorBase    ParamID = 0x080
	paramSamplerBase         ParamID = 0x100
	paramTextureBase         ParamID = 0x120
)

// Block sizes.
const (
	blendStateCount      = 11
	rasterizerStateCount = 11
	booleanCount         = 20
	floatCount           = 20
	vectorCount          = 64
	samplerCount         = 20
	textureCount         = 20
)

// Blend state parameters.
const (
	ParamBlendState0 ParamID = paramBlendStateBase + iota
	ParamBlendState1
	ParamBlendState2
	ParamBlendState3
	ParamBlendState4
	ParamBlendState5
	ParamBlendState6
	ParamBlendState7
	ParamBlendState8
	ParamBlendState9
	ParamBlendState10
)

// Rasterizer state parameters.
const (
	ParamRasterizerState0 ParamID = paramRasterizerStateBase + iota
	ParamRasterizerState1
	ParamRasterizerState2
	ParamRasterizerState3
	ParamRasterizerState4
	ParamRasterizerState5
	ParamRasterizerState6
	ParamRasterizerState7
	ParamRasterizerState8
	ParamRasterizerState9
	ParamRasterizerState10
)

// Boolean parameters.
const (
	ParamCustomBoolean0 ParamID = paramCustomBooleanBase + iota
	ParamCustomBoolean1
	ParamCustomBoolean2
	ParamCustomBoolean3
	ParamCustomBoolean4
	ParamCustomBoolean5
	ParamCustomBoolean6
	ParamCustomBoolean7
	ParamCustomBoolean8
	ParamCustomBoolean9
	ParamCustomBoolean10
	ParamCustomBoolean11
	ParamCustomBoolean12
	ParamCustomBoolean13
	ParamCustomBoolean14
	ParamCustomBoolean15
	ParamCustomBoolean16
	ParamCustomBoolean17
	ParamCustomBoolean18
	ParamCustomBoolean19
)

// Float parameters.
const (
	ParamCustomFloat0 ParamID = paramCustomFloatBase + iota
	ParamCustomFloat1
	ParamCustomFloat2
	ParamCustomFloat3
	ParamCustomFloat4
	ParamCustomFloat5
	ParamCustomFloat6
	ParamCustomFloat7
	ParamCustomFloat8
	ParamCustomFloat9
	ParamCustomFloat10
	ParamCustomFloat11
	ParamCustomFloat12
	ParamCustomFloat13
	ParamCustomFloat14
	ParamCustomFloat15
	ParamCustomFloat16
	ParamCustomFloat17
	ParamCustomFloat18
	ParamCustomFloat19
)

// Vector4 parameters.
const (
	ParamCustomVector0 ParamID = paramCustomVectorBase + iota
	ParamCustomVector1
	ParamCustomVector2
	ParamCustomVector3
	ParamCustomVector4
	ParamCustomVector5
	ParamCustomVector6
	ParamCustomVector7
	ParamCustomVector8
	ParamCustomVector9
	ParamCustomVector10
	ParamCustomVector11
	ParamCustomVector12
	ParamCustomVector13
	ParamCustomVector14
	ParamCustomVector15
	ParamCustomVector16
	ParamCustomVector17
	ParamCustomVector18
	ParamCustomVector19
	ParamCustomVector20
	ParamCustomVector21
	ParamCustomVector22
	ParamCustomVector23
	ParamCustomVector24
	ParamCustomVector25
	ParamCustomVector26
	ParamCustomVector27
	ParamCustomVector28
	ParamCustomVector29
	ParamCustomVector30
	ParamCustomVector31
	ParamCustomVector32
	ParamCustomVector33
	ParamCustomVector34
	ParamCustomVector35
	ParamCustomVector36
	ParamCustomVector37
	ParamCustomVector38
	ParamCustomVector39
	ParamCustomVector40
	ParamCustomVector41
	ParamCustomVector42
	ParamCustomVector43
	ParamCustomVector44
	ParamCustomVector45
	ParamCustomVector46
	ParamCustomVector47
	ParamCustomVector48
	ParamCustomVector49
	ParamCustomVector50
	ParamCustomVector51
	ParamCustomVector52
	ParamCustomVector53
	ParamCustomVector54
	ParamCustomVector55
	ParamCustomVector56
	ParamCustomVector57
	ParamCustomVector58
	ParamCustomVector59
	ParamCustomVector60
	ParamCustomVector61
	ParamCustomVector62
	ParamCustomVector63
)

// Sampler parameters.
const (
	ParamSampler0 ParamID = paramSamplerBase + iota
	ParamSampler1
	ParamSampler2
	ParamSampler3
	ParamSampler4
	ParamSampler5
	ParamSampler6
	ParamSampler7
	ParamSampler8
	ParamSampler9
	ParamSampler10
	ParamSampler11
	ParamSampler12
	ParamSampler13
	ParamSampler14
	ParamSampler15
	ParamSampler16
	ParamSampler17
	ParamSampler18
	ParamSampler19
)

// Texture parameters.
const (
	ParamTexture0 ParamID = paramTextureBase + iota
	ParamTexture1
	ParamTexture2
	ParamTexture3
	ParamTexture4
	ParamTexture5
	ParamTexture6
	ParamTexture7
	ParamTexture8
	ParamTexture9
	ParamTexture10
	ParamTexture11
	ParamTexture12
	ParamTexture13
	ParamTexture14
	ParamTexture15
	ParamTexture16
	ParamTexture17
	ParamTexture18
	ParamTexture19
)

func blockIndex(p, base ParamID, count int) (int, bool) {
	if p >= base && p < base+ParamID(count) {
		return int(p - base), true
	}
	return 0, false
}

// String returns the parameter name as it appears in matl files and shader
// program listings, e.g. "CustomVector47".
func (p ParamID) String() string {
	switch p {
	case ParamDiffuse:
		return "Diffuse"
	case ParamSpecular:
		return "Specular"
	case ParamAmbient:
		return "Ambient"
	case ParamBlendMap:
		return "BlendMap"
	case ParamTransparency:
		return "Transparency"
	}
	if i, ok := blockIndex(p, paramBlendStateBase, blendStateCount); ok {
		return "BlendState" + strconv.Itoa(i)
	}
	if i, ok := blockIndex(p, paramRasterizerStateBase, rasterizerStateCount); ok {
		return "RasterizerState" + strconv.Itoa(i)
	}
	if i, ok := blockIndex(p, paramCustomBooleanBase, booleanCount); ok {
		return "CustomBoolean" + strconv.Itoa(i)
	}
	if i, ok := blockIndex(p, paramCustomFloatBase, floatCount); ok {
		return "CustomFloat" + strconv.Itoa(i)
	}
	if i, ok := blockIndex(p, paramCustomVectorBase, vectorCount); ok {
		return "CustomVector" + strconv.Itoa(i)
	}
	if i, ok := blockIndex(p, paramSamplerBase, samplerCount); ok {
		return "Sampler" + strconv.Itoa(i)
	}
	if i, ok := blockIndex(p, paramTextureBase, textureCount); ok {
		return "Texture" + strconv.Itoa(i)
	}
	return fmt.Sprintf("ParamID(%d)", uint16(p))
}

var paramBlocks = []struct {
	prefix string
	base   ParamID
	count  int
}{
	// Longer prefixes first so "CustomBoolean1" never matches "Custom".
	{"RasterizerState", paramRasterizerStateBase, rasterizerStateCount},
	{"CustomBoolean", paramCustomBooleanBase, booleanCount},
	{"CustomVector", paramCustomVectorBase, vectorCount},
	{"CustomFloat", paramCustomFloatBase, floatCount},
	{"BlendState", paramBlendStateBase, blendStateCount},
	{"Sampler", paramSamplerBase, samplerCount},
	{"Texture", paramTextureBase, textureCount},
}

var legacyParams = map[string]ParamID{
	"Diffuse":      ParamDiffuse,
	"Specular":     ParamSpecular,
	"Ambient":      ParamAmbient,
	"BlendMap":     ParamBlendMap,
	"Transparency": ParamTransparency,
}

// ParseParamID parses a parameter name like "Texture4" back into a ParamID.
// The second return value reports whether the name was recognized.
func ParseParamID(s string) (ParamID, bool) {
	if p, ok := legacyParams[s]; ok {
		return p, true
	}
	for _, b := range paramBlocks {
		rest, ok := strings.CutPrefix(s, b.prefix)
		if !ok || rest == "" {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 || n >= b.count {
			return 0, false
		}
		return b.base + ParamID(n), true
	}
	return 0, false
}

// SplitParam splits a shader database parameter listing like
// "CustomVector0.xyz" into its parameter name and channel suffix. Listings
// without an accessor return an empty suffix.
func SplitParam(s string) (name, channels string) {
	name, channels, _ = strings.Cut(s, ".")
	return name, channels
}

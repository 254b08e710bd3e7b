package material

import "github.com/Faultbox/ssbhlint/pkg/formats"

// ApplyPreset returns the preset with the target entry's identity folded
// in. The material label is preserved so modl and anim references stay
// valid, and texture assignments carry over where the preset uses the same
// slot; remaining preset textures fall back to the neutral defaults.
func ApplyPreset(entry, preset *formats.MatlEntry) formats.MatlEntry {
	result := *preset
	result.MaterialLabel = entry.MaterialLabel

	result.BlendStates = append([]formats.BlendStateParam(nil), preset.BlendStates...)
	result.Floats = append([]formats.FloatParam(nil), preset.Floats...)
	result.Booleans = append([]formats.BooleanParam(nil), preset.Booleans...)
	result.Vectors = append([]formats.Vector4Param(nil), preset.Vectors...)
	result.RasterizerStates = append([]formats.RasterizerStateParam(nil), preset.RasterizerStates...)
	result.Samplers = append([]formats.SamplerParam(nil), preset.Samplers...)

	result.Textures = make([]formats.TextureParam, 0, len(preset.Textures))
	for _, presetTexture := range preset.Textures {
		data := formats.DefaultTexture(presetTexture.ParamID)
		for _, t := range entry.Textures {
			if t.ParamID == presetTexture.ParamID {
				data = t.Data
				break
			}
		}
		result.Textures = append(result.Textures, formats.TextureParam{
			ParamID: presetTexture.ParamID,
			Data:    data,
		})
	}
	return result
}

// DefaultEntry returns the starting material used when creating entries
// from scratch: an opaque PBS shader with neutral parameter values.
func DefaultEntry() formats.MatlEntry {
	return formats.MatlEntry{
		MaterialLabel: "NEW_MATERIAL",
		ShaderLabel:   "SFX_PBS_0100000008008269_opaque",
		BlendStates: []formats.BlendStateParam{
			{ParamID: formats.ParamBlendState0, Data: formats.DefaultBlendState()},
		},
		Floats: []formats.FloatParam{
			{ParamID: formats.ParamCustomFloat8, Data: 0.4},
		},
		Booleans: []formats.BooleanParam{
			{ParamID: formats.ParamCustomBoolean1, Data: true},
			{ParamID: formats.ParamCustomBoolean3, Data: true},
			{ParamID: formats.ParamCustomBoolean4, Data: true},
		},
		Vectors: []formats.Vector4Param{
			// All zeros to allow for transparency.
			{ParamID: formats.ParamCustomVector0, Data: formats.Vector4{}},
			{ParamID: formats.ParamCustomVector8, Data: formats.Vector4{X: 1, Y: 1, Z: 1, W: 1}},
			{ParamID: formats.ParamCustomVector13, Data: formats.Vector4{X: 1, Y: 1, Z: 1, W: 1}},
			{ParamID: formats.ParamCustomVector14, Data: formats.Vector4{X: 1, Y: 1, Z: 1, W: 1}},
		},
		RasterizerStates: []formats.RasterizerStateParam{
			{ParamID: formats.ParamRasterizerState0, Data: formats.DefaultRasterizerState()},
		},
		Samplers: []formats.SamplerParam{
			{ParamID: formats.ParamSampler0, Data: formats.DefaultSampler()},
			{ParamID: formats.ParamSampler4, Data: formats.DefaultSampler()},
			{ParamID: formats.ParamSampler6, Data: formats.DefaultSampler()},
			{ParamID: formats.ParamSampler7, Data: formats.DefaultSampler()},
		},
		Textures: []formats.TextureParam{
			{ParamID: formats.ParamTexture0, Data: formats.DefaultTexture(formats.ParamTexture0)},
			{ParamID: formats.ParamTexture4, Data: formats.DefaultTexture(formats.ParamTexture4)},
			{ParamID: formats.ParamTexture6, Data: formats.DefaultTexture(formats.ParamTexture6)},
			{ParamID: formats.ParamTexture7, Data: formats.DefaultTexture(formats.ParamTexture7)},
		},
	}
}

// Package presets provides the material preset library: named starting
// point materials users apply to entries in bulk. Presets persist as a
// material file dump; the built in set is written out on first use so the
// application ships without a presets file.
package presets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Faultbox/ssbhlint/pkg/formats"
)

func defaultTextureParam(id formats.ParamID) formats.TextureParam {
	return formats.TextureParam{ParamID: id, Data: formats.DefaultTexture(id)}
}

// DefaultPresets returns the built in presets.
func DefaultPresets() []formats.MatlEntry {
	return []formats.MatlEntry{
		{
			MaterialLabel: "PRM Standard",
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
				defaultTextureParam(formats.ParamTexture0),
				defaultTextureParam(formats.ParamTexture4),
				defaultTextureParam(formats.ParamTexture6),
				defaultTextureParam(formats.ParamTexture7),
			},
		},
		{
			MaterialLabel: "PRM Emissive Standard",
			ShaderLabel:   "SFX_PBS_010000080a008269_opaque",
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
				{ParamID: formats.ParamCustomBoolean5, Data: true},
			},
			Vectors: []formats.Vector4Param{
				{ParamID: formats.ParamCustomVector0, Data: formats.Vector4{}},
				{ParamID: formats.ParamCustomVector3, Data: formats.Vector4{X: 1, Y: 1, Z: 1, W: 1}},
				{ParamID: formats.ParamCustomVector6, Data: formats.Vector4{X: 1, Y: 1}},
				{ParamID: formats.ParamCustomVector8, Data: formats.Vector4{X: 1, Y: 1, Z: 1, W: 1}},
				{ParamID: formats.ParamCustomVector13, Data: formats.Vector4{X: 1, Y: 1, Z: 1, W: 1}},
				{ParamID: formats.ParamCustomVector14, Data: formats.Vector4{X: 0.75, Y: 0.75, Z: 0.75, W: 1}},
				{ParamID: formats.ParamCustomVector29, Data: formats.Vector4{}},
			},
			RasterizerStates: []formats.RasterizerStateParam{
				{ParamID: formats.ParamRasterizerState0, Data: formats.DefaultRasterizerState()},
			},
			Samplers: []formats.SamplerParam{
				{ParamID: formats.ParamSampler0, Data: formats.DefaultSampler()},
				{ParamID: formats.ParamSampler4, Data: formats.DefaultSampler()},
				{ParamID: formats.ParamSampler5, Data: formats.DefaultSampler()},
				{ParamID: formats.ParamSampler6, Data: formats.DefaultSampler()},
				{ParamID: formats.ParamSampler7, Data: formats.DefaultSampler()},
			},
			Textures: []formats.TextureParam{
				defaultTextureParam(formats.ParamTexture0),
				defaultTextureParam(formats.ParamTexture4),
				defaultTextureParam(formats.ParamTexture5),
				defaultTextureParam(formats.ParamTexture6),
				defaultTextureParam(formats.ParamTexture7),
			},
		},
		{
			MaterialLabel: "Alpha Blend",
			ShaderLabel:   "SFX_PBS_0100000008018269_sort",
			BlendStates: []formats.BlendStateParam{
				{ParamID: formats.ParamBlendState0, Data: formats.BlendState{
					SourceColor:      "SourceAlpha",
					DestinationColor: "OneMinusSourceAlpha",
				}},
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
				defaultTextureParam(formats.ParamTexture0),
				defaultTextureParam(formats.ParamTexture4),
				defaultTextureParam(formats.ParamTexture6),
				defaultTextureParam(formats.ParamTexture7),
			},
		},
	}
}

// Load reads presets from path. A missing file is seeded with the built in
// presets first so later edits have a file to start from; any read or
// parse failure falls back to the built in set.
func Load(path string) ([]formats.MatlEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if writeErr := Save(path, DefaultPresets()); writeErr != nil {
			return DefaultPresets(), fmt.Errorf("writing default presets to %s: %w", path, writeErr)
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return DefaultPresets(), fmt.Errorf("reading presets from %s: %w", path, err)
		}
	}

	var matl formats.Matl
	if err := json.Unmarshal(data, &matl); err != nil {
		return DefaultPresets(), fmt.Errorf("parsing presets from %s: %w", path, err)
	}
	return matl.Entries, nil
}

// Save writes the presets in the material dump format.
func Save(path string, entries []formats.MatlEntry) error {
	matl := formats.Matl{MajorVersion: 1, MinorVersion: 6, Entries: entries}
	data, err := json.MarshalIndent(&matl, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FindByLabel returns the preset with the given label, if any.
func FindByLabel(entries []formats.MatlEntry, label string) *formats.MatlEntry {
	for i := range entries {
		if entries[i].MaterialLabel == label {
			return &entries[i]
		}
	}
	return nil
}

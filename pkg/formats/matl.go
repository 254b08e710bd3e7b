package formats

import (
	"encoding/json"
	"fmt"
)

// Vector4 is a four component float vector.
type Vector4 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// BlendState describes fixed function blending for a material.
type BlendState struct {
	SourceColor           string `json:"source_color"`
	DestinationColor      string `json:"destination_color"`
	AlphaSampleToCoverage bool   `json:"alpha_sample_to_coverage"`
}

// DefaultBlendState returns the opaque blend state.
func DefaultBlendState() BlendState {
	return BlendState{SourceColor: "One", DestinationColor: "Zero"}
}

// RasterizerState describes polygon fill and culling for a material.
type RasterizerState struct {
	FillMode  string  `json:"fill_mode"`
	CullMode  string  `json:"cull_mode"`
	DepthBias float32 `json:"depth_bias"`
}

// DefaultRasterizerState returns solid fill with back face culling.
func DefaultRasterizerState() RasterizerState {
	return RasterizerState{FillMode: "Solid", CullMode: "Back"}
}

// Sampler describes texture sampling for one texture slot.
type Sampler struct {
	WrapS         string  `json:"wraps"`
	WrapT         string  `json:"wrapt"`
	WrapR         string  `json:"wrapr"`
	MinFilter     string  `json:"min_filter"`
	MagFilter     string  `json:"mag_filter"`
	LodBias       float32 `json:"lod_bias"`
	MaxAnisotropy int     `json:"max_anisotropy"`
}

// DefaultSampler returns repeat wrapping with linear filtering.
func DefaultSampler() Sampler {
	return Sampler{
		WrapS:     "Repeat",
		WrapT:     "Repeat",
		WrapR:     "Repeat",
		MinFilter: "LinearMipmapLinear",
		MagFilter: "Linear",
	}
}

// Typed (ParamID, value) pairs, one per parameter kind.
type (
	BooleanParam struct {
		ParamID ParamID `json:"param_id"`
		Data    bool    `json:"data"`
	}
	FloatParam struct {
		ParamID ParamID `json:"param_id"`
		Data    float32 `json:"data"`
	}
	Vector4Param struct {
		ParamID ParamID `json:"param_id"`
		Data    Vector4 `json:"data"`
	}
	TextureParam struct {
		ParamID ParamID `json:"param_id"`
		Data    string  `json:"data"`
	}
	SamplerParam struct {
		ParamID ParamID `json:"param_id"`
		Data    Sampler `json:"data"`
	}
	BlendStateParam struct {
		ParamID ParamID    `json:"param_id"`
		Data    BlendState `json:"data"`
	}
	RasterizerStateParam struct {
		ParamID ParamID         `json:"param_id"`
		Data    RasterizerState `json:"data"`
	}
)

// MatlEntry is one material. The label joins the material to modl entries
// and is unique within a file in game data but not in user created files.
// The first 24 characters of the shader label select the shader program.
//
// Within each parameter list, IDs are unique and kept sorted ascending by
// the ParamID numeric encoding. Serializers and diff tools rely on this
// canonical ordering.
type MatlEntry struct {
	MaterialLabel    string                 `json:"material_label"`
	ShaderLabel      string                 `json:"shader_label"`
	BlendStates      []BlendStateParam      `json:"blend_states"`
	Floats           []FloatParam           `json:"floats"`
	Booleans         []BooleanParam         `json:"booleans"`
	Vectors          []Vector4Param         `json:"vectors"`
	RasterizerStates []RasterizerStateParam `json:"rasterizer_states"`
	Samplers         []SamplerParam         `json:"samplers"`
	Textures         []TextureParam         `json:"textures"`
}

// ShaderProgramKey returns the shader label prefix used to look up the
// entry's shader program in the shader database.
func (e *MatlEntry) ShaderProgramKey() string {
	if len(e.ShaderLabel) < 24 {
		return e.ShaderLabel
	}
	return e.ShaderLabel[:24]
}

// ParamIDs returns the IDs of every parameter in the entry across all seven
// lists, in entry order (booleans first, rasterizer states last).
func (e *MatlEntry) ParamIDs() []ParamID {
	ids := make([]ParamID, 0,
		len(e.BlendStates)+len(e.Floats)+len(e.Booleans)+len(e.Vectors)+
			len(e.RasterizerStates)+len(e.Samplers)+len(e.Textures))
	for _, p := range e.Booleans {
		ids = append(ids, p.ParamID)
	}
	for _, p := range e.Floats {
		ids = append(ids, p.ParamID)
	}
	for _, p := range e.Vectors {
		ids = append(ids, p.ParamID)
	}
	for _, p := range e.Textures {
		ids = append(ids, p.ParamID)
	}
	for _, p := range e.Samplers {
		ids = append(ids, p.ParamID)
	}
	for _, p := range e.BlendStates {
		ids = append(ids, p.ParamID)
	}
	for _, p := range e.RasterizerStates {
		ids = append(ids, p.ParamID)
	}
	return ids
}

// HasParam reports whether any of the seven lists contains the ID.
func (e *MatlEntry) HasParam(id ParamID) bool {
	for _, p := range e.ParamIDs() {
		if p == id {
			return true
		}
	}
	return false
}

// Matl is a material file (model.numatb).
type Matl struct {
	MajorVersion uint16      `json:"major_version"`
	MinorVersion uint16      `json:"minor_version"`
	Entries      []MatlEntry `json:"entries"`
}

// MarshalJSON writes the parameter name, matching the ssbh_data_json dump
// form ("Texture0" rather than a number).
func (p ParamID) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts the parameter name form.
func (p *ParamID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	id, ok := ParseParamID(s)
	if !ok {
		return fmt.Errorf("unknown param id %q", s)
	}
	*p = id
	return nil
}

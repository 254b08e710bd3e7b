package material

import (
	"reflect"
	"testing"

	"github.com/Faultbox/ssbhlint/pkg/formats"
	"github.com/Faultbox/ssbhlint/pkg/shaderdb"
)

func testProgram() shaderdb.Program {
	return shaderdb.Program{
		VertexAttributes: []string{"Position0", "map1"},
		MaterialParameters: []string{
			"BlendState0",
			"CustomVector0.x",
			"CustomVector8",
			"RasterizerState0",
			"Sampler0",
			"Texture0",
		},
	}
}

func TestMissingParameters(t *testing.T) {
	program := testProgram()
	entry := formats.MatlEntry{
		Vectors: []formats.Vector4Param{{ParamID: formats.ParamCustomVector0}},
		Textures: []formats.TextureParam{
			{ParamID: formats.ParamTexture0, Data: "col"},
		},
	}

	want := []formats.ParamID{
		formats.ParamBlendState0,
		formats.ParamCustomVector8,
		formats.ParamRasterizerState0,
		formats.ParamSampler0,
	}
	if got := MissingParameters(&entry, &program); !reflect.DeepEqual(got, want) {
		t.Errorf("MissingParameters() = %v, want %v", got, want)
	}
}

func TestUnusedParameters(t *testing.T) {
	program := testProgram()
	entry := formats.MatlEntry{
		Floats: []formats.FloatParam{{ParamID: formats.ParamCustomFloat8}},
		Vectors: []formats.Vector4Param{
			{ParamID: formats.ParamCustomVector0},
			{ParamID: formats.ParamCustomVector13},
		},
	}

	want := []formats.ParamID{
		formats.ParamCustomFloat8,
		formats.ParamCustomVector13,
	}
	if got := UnusedParameters(&entry, &program); !reflect.DeepEqual(got, want) {
		t.Errorf("UnusedParameters() = %v, want %v", got, want)
	}
}

func TestAddParametersDefaults(t *testing.T) {
	program := testProgram()
	entry := formats.MatlEntry{}

	AddParameters(&entry, MissingParameters(&entry, &program))

	if len(entry.BlendStates) != 1 || entry.BlendStates[0].Data != formats.DefaultBlendState() {
		t.Errorf("expected default blend state, got %+v", entry.BlendStates)
	}
	if len(entry.Vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(entry.Vectors))
	}
	if entry.Vectors[0].Data != (formats.Vector4{}) {
		t.Errorf("expected zero vector, got %+v", entry.Vectors[0].Data)
	}
	if len(entry.Samplers) != 1 || entry.Samplers[0].Data != formats.DefaultSampler() {
		t.Errorf("expected default sampler, got %+v", entry.Samplers)
	}
	if len(entry.Textures) != 1 || entry.Textures[0].Data != "/common/shader/sfxpbs/default_white" {
		t.Errorf("expected default white texture, got %+v", entry.Textures)
	}

	// A second application adds nothing.
	if missing := MissingParameters(&entry, &program); len(missing) != 0 {
		t.Errorf("expected no missing parameters after add, got %v", missing)
	}
}

func TestAddParametersPreservesExisting(t *testing.T) {
	program := testProgram()
	entry := formats.MatlEntry{
		Textures: []formats.TextureParam{
			{ParamID: formats.ParamTexture0, Data: "mario_col"},
		},
	}

	AddParameters(&entry, MissingParameters(&entry, &program))

	if len(entry.Textures) != 1 || entry.Textures[0].Data != "mario_col" {
		t.Errorf("expected existing texture untouched, got %+v", entry.Textures)
	}
}

func TestAddParametersIgnoresUnknown(t *testing.T) {
	entry := formats.MatlEntry{}
	AddParameters(&entry, []formats.ParamID{formats.ParamDiffuse, formats.ParamID(0xffff)})
	if got := entry.ParamIDs(); len(got) != 0 {
		t.Errorf("expected unclassified ids to be ignored, got %v", got)
	}
}

func TestRemoveParameters(t *testing.T) {
	program := testProgram()
	entry := formats.MatlEntry{
		Floats: []formats.FloatParam{{ParamID: formats.ParamCustomFloat8}},
		Vectors: []formats.Vector4Param{
			{ParamID: formats.ParamCustomVector0},
			{ParamID: formats.ParamCustomVector13},
		},
		Textures: []formats.TextureParam{
			{ParamID: formats.ParamTexture0, Data: "col"},
		},
	}

	RemoveParameters(&entry, UnusedParameters(&entry, &program))

	want := []formats.ParamID{formats.ParamCustomVector0, formats.ParamTexture0}
	if got := entry.ParamIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v after removal, got %v", want, got)
	}
}

func TestSortParameters(t *testing.T) {
	entry := formats.MatlEntry{
		Vectors: []formats.Vector4Param{
			{ParamID: formats.ParamCustomVector13},
			{ParamID: formats.ParamCustomVector0},
			{ParamID: formats.ParamCustomVector8},
		},
		Textures: []formats.TextureParam{
			{ParamID: formats.ParamTexture7},
			{ParamID: formats.ParamTexture0},
		},
	}

	SortParameters(&entry)

	wantVectors := []formats.ParamID{
		formats.ParamCustomVector0, formats.ParamCustomVector8, formats.ParamCustomVector13,
	}
	for i, p := range entry.Vectors {
		if p.ParamID != wantVectors[i] {
			t.Errorf("vector %d = %v, want %v", i, p.ParamID, wantVectors[i])
		}
	}
	if entry.Textures[0].ParamID != formats.ParamTexture0 || entry.Textures[1].ParamID != formats.ParamTexture7 {
		t.Errorf("textures not sorted: %+v", entry.Textures)
	}
}

func TestApplyPresetEmptyMaterial(t *testing.T) {
	preset := DefaultEntry()
	entry := formats.MatlEntry{MaterialLabel: "alp_mario_001"}

	result := ApplyPreset(&entry, &preset)

	if result.MaterialLabel != "alp_mario_001" {
		t.Errorf("expected material label preserved, got %s", result.MaterialLabel)
	}
	if result.ShaderLabel != preset.ShaderLabel {
		t.Errorf("expected preset shader label, got %s", result.ShaderLabel)
	}
	// An empty target has no texture assignments to carry over, so every
	// preset texture falls back to its neutral default.
	for _, texture := range result.Textures {
		if texture.Data != formats.DefaultTexture(texture.ParamID) {
			t.Errorf("expected default for %v, got %q", texture.ParamID, texture.Data)
		}
	}
}

func TestApplyPresetKeepsTextures(t *testing.T) {
	preset := DefaultEntry()
	entry := formats.MatlEntry{
		MaterialLabel: "alp_mario_001",
		Textures: []formats.TextureParam{
			{ParamID: formats.ParamTexture0, Data: "mario_col"},
			{ParamID: formats.ParamTexture19, Data: "mario_unused"},
		},
	}

	result := ApplyPreset(&entry, &preset)

	var col string
	for _, texture := range result.Textures {
		if texture.ParamID == formats.ParamTexture0 {
			col = texture.Data
		}
		if texture.ParamID == formats.ParamTexture19 {
			t.Error("expected textures absent from the preset to be dropped")
		}
	}
	if col != "mario_col" {
		t.Errorf("expected mario_col carried over, got %q", col)
	}
}

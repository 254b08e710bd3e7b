package validation

import (
	"testing"

	"github.com/Faultbox/ssbhlint/pkg/formats"
	"github.com/Faultbox/ssbhlint/pkg/shaderdb"
)

func matlWithEntries(entries ...formats.MatlEntry) formats.Slot[formats.Matl] {
	return formats.Slot[formats.Matl]{
		Name: formats.MatlFileName,
		Data: &formats.Matl{MajorVersion: 1, MinorVersion: 6, Entries: entries},
	}
}

func meshWithObjects(objects ...formats.MeshObject) formats.Slot[formats.Mesh] {
	return formats.Slot[formats.Mesh]{
		Name: formats.MeshFileName,
		Data: &formats.Mesh{Objects: objects},
	}
}

func modlWithEntries(entries ...formats.ModlEntry) formats.Slot[formats.Modl] {
	return formats.Slot[formats.Modl]{
		Name: formats.ModlFileName,
		Data: &formats.Modl{Entries: entries},
	}
}

func nutexbSlot(name string, footer formats.NutexbFooter) formats.Slot[formats.Nutexb] {
	return formats.Slot[formats.Nutexb]{
		Name: name,
		Data: &formats.Nutexb{Footer: footer},
	}
}

func TestValidateEmptyFolder(t *testing.T) {
	folder := formats.ModelFolder{Path: "/mario/model/body/c00"}
	report := Validate(&folder, shaderdb.New(nil), nil)
	if !report.IsEmpty() {
		t.Errorf("expected empty report, got %+v", report)
	}
}

func TestRequiredAttributesAllMissing(t *testing.T) {
	db := shaderdb.New(map[string]shaderdb.Program{
		"SFX_PBS_0000000000000000": {
			VertexAttributes: []string{"Position0", "map1", "uvSet"},
		},
	})
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "a",
			ShaderLabel:   "SFX_PBS_0000000000000000_opaque",
		})},
		Meshes: []formats.Slot[formats.Mesh]{meshWithObjects(formats.MeshObject{
			Name: "object1", Subindex: 0,
		})},
		Modls: []formats.Slot[formats.Modl]{modlWithEntries(formats.ModlEntry{
			MeshObjectName: "object1", MeshObjectSubindex: 0, MaterialLabel: "a",
		})},
	}

	report := Validate(&folder, db, nil)

	if len(report.MatlErrors) != 1 {
		t.Fatalf("expected 1 matl error, got %d", len(report.MatlErrors))
	}
	if report.MatlErrors[0].EntryIndex() != 0 {
		t.Errorf("expected entry index 0, got %d", report.MatlErrors[0].EntryIndex())
	}
	want := `Mesh "object1" is missing attributes map1, uvSet required by assigned material "a".`
	if got := report.MatlErrors[0].Error(); got != want {
		t.Errorf("matl message mismatch:\n got %s\nwant %s", got, want)
	}

	if len(report.MeshErrors) != 1 {
		t.Fatalf("expected 1 mesh error, got %d", len(report.MeshErrors))
	}
	if report.MeshErrors[0].MeshObjectIndex() != 0 {
		t.Errorf("expected mesh index 0, got %d", report.MeshErrors[0].MeshObjectIndex())
	}
	if got := report.MeshErrors[0].Error(); got != want {
		t.Errorf("mesh message mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestRequiredAttributesUnknownShader(t *testing.T) {
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "a",
			ShaderLabel:   "SFX_PBS_9999999999999999_opaque",
		})},
		Meshes: []formats.Slot[formats.Mesh]{meshWithObjects(formats.MeshObject{
			Name: "object1",
		})},
		Modls: []formats.Slot[formats.Modl]{modlWithEntries(formats.ModlEntry{
			MeshObjectName: "object1", MaterialLabel: "a",
		})},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)
	if len(report.MatlErrors) != 0 || len(report.MeshErrors) != 0 {
		t.Errorf("expected no diagnostics for unresolvable shader labels, got %+v", report)
	}
}

func TestTextureFormatUsageAllInvalid(t *testing.T) {
	// Texture0 expects sRGB but gets a linear format; Texture4 expects
	// linear but gets sRGB. Both sides of the mismatch are reported.
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "a",
			Textures: []formats.TextureParam{
				{ParamID: formats.ParamTexture0, Data: "texture0"},
				{ParamID: formats.ParamTexture4, Data: "texture4"},
			},
		})},
		Nutexbs: []formats.Slot[formats.Nutexb]{
			nutexbSlot("texture0.nutexb", formats.NutexbFooter{
				Depth: 1, LayerCount: 1, ImageFormat: formats.FormatBC1Unorm,
			}),
			nutexbSlot("texture4.nutexb", formats.NutexbFooter{
				Depth: 1, LayerCount: 1, ImageFormat: formats.FormatBC2Srgb,
			}),
		},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)

	if len(report.MatlErrors) != 2 {
		t.Fatalf("expected 2 matl errors, got %d: %+v", len(report.MatlErrors), report.MatlErrors)
	}
	want0 := `Texture "texture0.nutexb" for material "a" has format BC1Unorm, but Texture0 expects an sRGB format.`
	if got := report.MatlErrors[0].Error(); got != want0 {
		t.Errorf("message mismatch:\n got %s\nwant %s", got, want0)
	}
	want4 := `Texture "texture4.nutexb" for material "a" has format BC2Srgb, but Texture4 does not expect an sRGB format.`
	if got := report.MatlErrors[1].Error(); got != want4 {
		t.Errorf("message mismatch:\n got %s\nwant %s", got, want4)
	}

	if len(report.NutexbErrors) != 2 {
		t.Fatalf("expected 2 nutexb errors, got %d", len(report.NutexbErrors))
	}
	if got := report.NutexbErrors[0].TextureName(); got != "texture0.nutexb" {
		t.Errorf("expected texture0.nutexb, got %s", got)
	}
}

func TestTextureFormatUsageValid(t *testing.T) {
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "a",
			Textures: []formats.TextureParam{
				{ParamID: formats.ParamTexture0, Data: "Texture0"},
			},
		})},
		Nutexbs: []formats.Slot[formats.Nutexb]{
			// Matching ignores case and the file extension.
			nutexbSlot("texture0.nutexb", formats.NutexbFooter{
				Depth: 1, LayerCount: 1, ImageFormat: formats.FormatBC7Srgb,
			}),
		},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)
	if len(report.MatlErrors) != 0 || len(report.NutexbErrors) != 0 {
		t.Errorf("expected no format diagnostics, got %+v", report)
	}
}

func TestTextureDimensionInvalid(t *testing.T) {
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "a",
			Textures: []formats.TextureParam{
				// Cube slot assigned a 2d texture.
				{ParamID: formats.ParamTexture7, Data: "texture7"},
			},
		})},
		Nutexbs: []formats.Slot[formats.Nutexb]{
			nutexbSlot("texture7.nutexb", formats.NutexbFooter{
				Depth: 1, LayerCount: 1, ImageFormat: formats.FormatBC6Ufloat,
			}),
		},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)

	found := false
	for _, err := range report.MatlErrors {
		if _, ok := err.(MatlUnexpectedTextureDimension); !ok {
			continue
		}
		found = true
		want := `Texture "texture7.nutexb" for material "a" has dimensions Texture2d, but Texture7 requires TextureCube.`
		if got := err.Error(); got != want {
			t.Errorf("message mismatch:\n got %s\nwant %s", got, want)
		}
	}
	if !found {
		t.Errorf("expected a dimension diagnostic, got %+v", report.MatlErrors)
	}
}

func TestTexturesOneMissing(t *testing.T) {
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "a",
			Textures: []formats.TextureParam{
				{ParamID: formats.ParamTexture0, Data: "texture0"},
				{ParamID: formats.ParamTexture7, Data: "#replace_cubemap"},
				{ParamID: formats.ParamTexture5, Data: "texture5"},
			},
		})},
		Nutexbs: []formats.Slot[formats.Nutexb]{
			nutexbSlot("texture0.nutexb", formats.NutexbFooter{
				Depth: 1, LayerCount: 1, ImageFormat: formats.FormatBC7Srgb,
			}),
		},
	}

	report := Validate(&folder, shaderdb.New(nil), []string{"#replace_cubemap"})

	var missing []MatlMissingTexture
	for _, err := range report.MatlErrors {
		if e, ok := err.(MatlMissingTexture); ok {
			missing = append(missing, e)
		}
	}
	if len(missing) != 1 {
		t.Fatalf("expected 1 missing texture, got %d: %+v", len(missing), report.MatlErrors)
	}
	want := `Texture "texture5" assigned to param Texture5 for material "a" is missing.`
	if got := missing[0].Error(); got != want {
		t.Errorf("message mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestRenormalMaterialMissingAdj(t *testing.T) {
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(
			formats.MatlEntry{MaterialLabel: "a"},
			formats.MatlEntry{MaterialLabel: "RENORMAL_b"},
		)},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)

	if len(report.MatlErrors) != 1 {
		t.Fatalf("expected 1 matl error, got %d", len(report.MatlErrors))
	}
	// The index counts RENORMAL materials, not all entries.
	if report.MatlErrors[0].EntryIndex() != 0 {
		t.Errorf("expected renormal index 0, got %d", report.MatlErrors[0].EntryIndex())
	}
	want := `Material "RENORMAL_b" is a RENORMAL material, but the model.adjb file is missing.`
	if got := report.MatlErrors[0].Error(); got != want {
		t.Errorf("message mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestRenormalMaterialMissingAdjEntry(t *testing.T) {
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "RENORMAL_a",
		})},
		Meshes: []formats.Slot[formats.Mesh]{meshWithObjects(
			formats.MeshObject{Name: "object1", Subindex: 0},
			formats.MeshObject{Name: "object2", Subindex: 0},
		)},
		Modls: []formats.Slot[formats.Modl]{modlWithEntries(
			formats.ModlEntry{MeshObjectName: "object1", MaterialLabel: "RENORMAL_a"},
			formats.ModlEntry{MeshObjectName: "object2", MaterialLabel: "RENORMAL_a"},
		)},
		Adjs: []formats.Slot[formats.Adj]{{
			Name: formats.AdjFileName,
			Data: &formats.Adj{Entries: []formats.AdjEntry{{MeshObjectIndex: 0}}},
		}},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)

	if len(report.MatlErrors) != 1 {
		t.Fatalf("expected 1 matl error, got %d: %+v", len(report.MatlErrors), report.MatlErrors)
	}
	want := `Mesh "object2" has the RENORMAL material "RENORMAL_a" but no corresponding entry in the model.adjb.`
	if got := report.MatlErrors[0].Error(); got != want {
		t.Errorf("message mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestRenormalAdjEntriesMatchBoundPosition(t *testing.T) {
	// The bound object sits at absolute mesh index 1 behind an object the
	// material does not bind, but the adjacency entry targets index 0: the
	// join counts positions among the bound objects, so index 0 matches.
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "RENORMAL_a",
		})},
		Meshes: []formats.Slot[formats.Mesh]{meshWithObjects(
			formats.MeshObject{Name: "unbound", Subindex: 0},
			formats.MeshObject{Name: "object1", Subindex: 0},
		)},
		Modls: []formats.Slot[formats.Modl]{modlWithEntries(
			formats.ModlEntry{MeshObjectName: "object1", MaterialLabel: "RENORMAL_a"},
		)},
		Adjs: []formats.Slot[formats.Adj]{{
			Name: formats.AdjFileName,
			Data: &formats.Adj{Entries: []formats.AdjEntry{{MeshObjectIndex: 0}}},
		}},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)
	if len(report.MatlErrors) != 0 {
		t.Errorf("expected the position-based join to satisfy the check, got %+v",
			report.MatlErrors)
	}

	// An entry targeting the absolute mesh index instead does not match.
	folder.Adjs[0].Data.Entries[0].MeshObjectIndex = 1
	report = Validate(&folder, shaderdb.New(nil), nil)
	if len(report.MatlErrors) != 1 {
		t.Fatalf("expected 1 matl error, got %d: %+v", len(report.MatlErrors), report.MatlErrors)
	}
	want := `Mesh "object1" has the RENORMAL material "RENORMAL_a" but no corresponding entry in the model.adjb.`
	if got := report.MatlErrors[0].Error(); got != want {
		t.Errorf("message mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestRenormalMaterialValid(t *testing.T) {
	folder := formats.ModelFolder{
		Matls: []formats.Slot[formats.Matl]{matlWithEntries(formats.MatlEntry{
			MaterialLabel: "RENORMAL_a",
		})},
		Meshes: []formats.Slot[formats.Mesh]{meshWithObjects(
			formats.MeshObject{Name: "object1", Subindex: 0},
		)},
		Modls: []formats.Slot[formats.Modl]{modlWithEntries(
			formats.ModlEntry{MeshObjectName: "object1", MaterialLabel: "RENORMAL_a"},
		)},
		Adjs: []formats.Slot[formats.Adj]{{
			Name: formats.AdjFileName,
			Data: &formats.Adj{Entries: []formats.AdjEntry{{MeshObjectIndex: 0}}},
		}},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)
	if len(report.MatlErrors) != 0 {
		t.Errorf("expected no diagnostics, got %+v", report.MatlErrors)
	}
}

func TestMeshSubindexDuplicate(t *testing.T) {
	folder := formats.ModelFolder{
		Meshes: []formats.Slot[formats.Mesh]{meshWithObjects(
			formats.MeshObject{Name: "object1", Subindex: 0},
			formats.MeshObject{Name: "object1", Subindex: 0},
			formats.MeshObject{Name: "object1", Subindex: 1},
			formats.MeshObject{Name: "object2", Subindex: 0},
		)},
	}

	report := Validate(&folder, shaderdb.New(nil), nil)

	if len(report.MeshErrors) != 1 {
		t.Fatalf("expected 1 mesh error, got %d", len(report.MeshErrors))
	}
	if report.MeshErrors[0].MeshObjectIndex() != 1 {
		t.Errorf("expected the duplicate at index 1, got %d", report.MeshErrors[0].MeshObjectIndex())
	}
	want := `Mesh "object1" repeats subindex 0. Subindices must be unique.`
	if got := report.MeshErrors[0].Error(); got != want {
		t.Errorf("message mismatch:\n got %s\nwant %s", got, want)
	}
}

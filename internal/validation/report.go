// Package validation computes cross-file consistency diagnostics for a
// model folder: attribute requirements between materials and meshes,
// texture format and dimension expectations, and adjacency data required by
// RENORMAL materials.
//
// Diagnostics are advisory values, not failures. Validation itself never
// fails; absent or unparseable files simply shrink the set of applicable
// checks.
package validation

import (
	"fmt"
	"strings"

	"github.com/Faultbox/ssbhlint/pkg/formats"
)

// TODO: Add a severity level to differentiate warnings vs errors.

// MeshError is a diagnostic attached to a mesh object. The index is used
// for association since mesh names are not always unique.
type MeshError interface {
	error
	MeshObjectIndex() int
}

// MatlError is a diagnostic attached to a material entry. The index is used
// for association since labels in user created files are not always unique.
type MatlError interface {
	error
	EntryIndex() int
}

// NutexbError is a diagnostic attached to a texture file by name.
type NutexbError interface {
	error
	TextureName() string
}

// Diagnostic kinds with no variants yet keep their per-kind slot in the
// report so UI code can treat every file kind uniformly.
type (
	SkelError   = error
	ModlError   = error
	AdjError    = error
	AnimError   = error
	HlpbError   = error
	MeshExError = error
)

// Report holds one ordered diagnostic list per file kind. Reports are
// recomputed wholesale on every validation pass and never mutated in place.
type Report struct {
	MeshErrors   []MeshError
	SkelErrors   []SkelError
	MatlErrors   []MatlError
	ModlErrors   []ModlError
	AdjErrors    []AdjError
	AnimErrors   []AnimError
	HlpbErrors   []HlpbError
	MeshExErrors []MeshExError
	NutexbErrors []NutexbError
}

// IsEmpty reports whether the pass produced no diagnostics.
func (r *Report) IsEmpty() bool {
	return len(r.MeshErrors) == 0 && len(r.SkelErrors) == 0 &&
		len(r.MatlErrors) == 0 && len(r.ModlErrors) == 0 &&
		len(r.AdjErrors) == 0 && len(r.AnimErrors) == 0 &&
		len(r.HlpbErrors) == 0 && len(r.MeshExErrors) == 0 &&
		len(r.NutexbErrors) == 0
}

// MeshMissingAttributes reports a mesh object lacking vertex attributes its
// assigned material's shader reads.
type MeshMissingAttributes struct {
	MeshIndex         int
	MeshName          string
	MaterialLabel     string
	MissingAttributes []string
}

func (e MeshMissingAttributes) MeshObjectIndex() int { return e.MeshIndex }

func (e MeshMissingAttributes) Error() string {
	return fmt.Sprintf("Mesh %q is missing attributes %s required by assigned material %q.",
		e.MeshName, strings.Join(e.MissingAttributes, ", "), e.MaterialLabel)
}

// MeshDuplicateSubindex reports two mesh objects sharing a name and
// subindex, which breaks material and vertex weight assignment.
type MeshDuplicateSubindex struct {
	MeshIndex int
	MeshName  string
	Subindex  int64
}

func (e MeshDuplicateSubindex) MeshObjectIndex() int { return e.MeshIndex }

func (e MeshDuplicateSubindex) Error() string {
	return fmt.Sprintf("Mesh %q repeats subindex %d. Subindices must be unique.",
		e.MeshName, e.Subindex)
}

// MatlMissingAttributes is the material side of MeshMissingAttributes. The
// problem can be fixed from either file, so both get a diagnostic.
type MatlMissingAttributes struct {
	Entry             int
	MaterialLabel     string
	MeshName          string
	MissingAttributes []string
}

func (e MatlMissingAttributes) EntryIndex() int { return e.Entry }

func (e MatlMissingAttributes) Error() string {
	return fmt.Sprintf("Mesh %q is missing attributes %s required by assigned material %q.",
		e.MeshName, strings.Join(e.MissingAttributes, ", "), e.MaterialLabel)
}

func srgbClause(param formats.ParamID) string {
	if formats.ExpectsSRGB(param) {
		return "expects"
	}
	return "does not expect"
}

// MatlUnexpectedTextureFormat reports an sRGB mismatch between a texture
// parameter and the assigned texture's pixel format.
type MatlUnexpectedTextureFormat struct {
	Entry         int
	MaterialLabel string
	Param         formats.ParamID
	Nutexb        string
	Format        formats.ImageFormat
}

func (e MatlUnexpectedTextureFormat) EntryIndex() int { return e.Entry }

func (e MatlUnexpectedTextureFormat) Error() string {
	return fmt.Sprintf("Texture %q for material %q has format %v, but %v %s an sRGB format.",
		e.Nutexb, e.MaterialLabel, e.Format, e.Param, srgbClause(e.Param))
}

// MatlUnexpectedTextureDimension reports a 2D texture in a cube map slot or
// vice versa.
type MatlUnexpectedTextureDimension struct {
	Entry         int
	MaterialLabel string
	Param         formats.ParamID
	Nutexb        string
	Expected      formats.TextureDimension
	Actual        formats.TextureDimension
}

func (e MatlUnexpectedTextureDimension) EntryIndex() int { return e.Entry }

func (e MatlUnexpectedTextureDimension) Error() string {
	return fmt.Sprintf("Texture %q for material %q has dimensions %v, but %v requires %v.",
		e.Nutexb, e.MaterialLabel, e.Actual, e.Param, e.Expected)
}

// MatlMissingTexture reports a texture parameter whose value resolves to no
// texture in the folder and no known default texture.
type MatlMissingTexture struct {
	Entry         int
	MaterialLabel string
	Param         formats.ParamID
	Nutexb        string
}

func (e MatlMissingTexture) EntryIndex() int { return e.Entry }

func (e MatlMissingTexture) Error() string {
	return fmt.Sprintf("Texture %q assigned to param %v for material %q is missing.",
		e.Nutexb, e.Param, e.MaterialLabel)
}

// MatlRenormalMissingAdjEntry reports a mesh object assigned a RENORMAL
// material without a matching adjacency entry.
type MatlRenormalMissingAdjEntry struct {
	Entry         int
	MaterialLabel string
	MeshName      string
}

func (e MatlRenormalMissingAdjEntry) EntryIndex() int { return e.Entry }

func (e MatlRenormalMissingAdjEntry) Error() string {
	return fmt.Sprintf("Mesh %q has the RENORMAL material %q but no corresponding entry in the model.adjb.",
		e.MeshName, e.MaterialLabel)
}

// MatlRenormalMissingAdj reports a RENORMAL material in a folder with no
// adjacency file at all.
type MatlRenormalMissingAdj struct {
	Entry         int
	MaterialLabel string
}

func (e MatlRenormalMissingAdj) EntryIndex() int { return e.Entry }

func (e MatlRenormalMissingAdj) Error() string {
	return fmt.Sprintf("Material %q is a RENORMAL material, but the model.adjb file is missing.",
		e.MaterialLabel)
}

// NutexbFormatInvalidForUsage is the texture side of
// MatlUnexpectedTextureFormat.
type NutexbFormatInvalidForUsage struct {
	Nutexb string
	Format formats.ImageFormat
	Param  formats.ParamID
}

func (e NutexbFormatInvalidForUsage) TextureName() string { return e.Nutexb }

func (e NutexbFormatInvalidForUsage) Error() string {
	return fmt.Sprintf("Texture %q has format %v, but %v %s an sRGB format.",
		e.Nutexb, e.Format, e.Param, srgbClause(e.Param))
}

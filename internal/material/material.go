// Package material reconciles material entries against shader programs:
// finding missing or unused parameters, applying defaults for additions,
// and restoring the canonical parameter ordering after every edit.
package material

import (
	"sort"

	"github.com/Faultbox/ssbhlint/pkg/formats"
	"github.com/Faultbox/ssbhlint/pkg/shaderdb"
)

// MissingParameters returns the program parameters absent from all seven of
// the entry's parameter lists, in program declaration order.
func MissingParameters(entry *formats.MatlEntry, program *shaderdb.Program) []formats.ParamID {
	var missing []formats.ParamID
	for _, id := range program.RequiredParameters() {
		if !entry.HasParam(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// UnusedParameters returns the entry parameters the program never declares,
// in entry order.
func UnusedParameters(entry *formats.MatlEntry, program *shaderdb.Program) []formats.ParamID {
	var unused []formats.ParamID
	for _, id := range entry.ParamIDs() {
		if !program.HasParameter(id) {
			unused = append(unused, id)
		}
	}
	return unused
}

// AddParameters appends each parameter to its classified list with a
// default value (false, 0.0, zero vector, neutral state or texture).
// Unclassified IDs are ignored. Existing parameters are never touched, and
// all seven lists are re-sorted afterwards. Callers pass the result of
// MissingParameters, which makes repeated application a no-op.
func AddParameters(entry *formats.MatlEntry, ids []formats.ParamID) {
	for _, id := range ids {
		switch id.Kind() {
		case formats.KindBlendState:
			entry.BlendStates = append(entry.BlendStates, formats.BlendStateParam{
				ParamID: id,
				Data:    formats.DefaultBlendState(),
			})
		case formats.KindFloat:
			entry.Floats = append(entry.Floats, formats.FloatParam{ParamID: id})
		case formats.KindBoolean:
			entry.Booleans = append(entry.Booleans, formats.BooleanParam{ParamID: id})
		case formats.KindVector4:
			entry.Vectors = append(entry.Vectors, formats.Vector4Param{ParamID: id})
		case formats.KindRasterizerState:
			entry.RasterizerStates = append(entry.RasterizerStates, formats.RasterizerStateParam{
				ParamID: id,
				Data:    formats.DefaultRasterizerState(),
			})
		case formats.KindSampler:
			entry.Samplers = append(entry.Samplers, formats.SamplerParam{
				ParamID: id,
				Data:    formats.DefaultSampler(),
			})
		case formats.KindTexture:
			entry.Textures = append(entry.Textures, formats.TextureParam{
				ParamID: id,
				Data:    formats.DefaultTexture(id),
			})
		}
	}
	SortParameters(entry)
}

// RemoveParameters removes each parameter from whichever list holds it.
// IDs not present are no-ops. Removal swaps with the last element since
// the final re-sort restores order anyway.
func RemoveParameters(entry *formats.MatlEntry, ids []formats.ParamID) {
	for _, id := range ids {
		switch id.Kind() {
		case formats.KindBlendState:
			entry.BlendStates = removeParam(entry.BlendStates, id,
				func(p formats.BlendStateParam) formats.ParamID { return p.ParamID })
		case formats.KindFloat:
			entry.Floats = removeParam(entry.Floats, id,
				func(p formats.FloatParam) formats.ParamID { return p.ParamID })
		case formats.KindBoolean:
			entry.Booleans = removeParam(entry.Booleans, id,
				func(p formats.BooleanParam) formats.ParamID { return p.ParamID })
		case formats.KindVector4:
			entry.Vectors = removeParam(entry.Vectors, id,
				func(p formats.Vector4Param) formats.ParamID { return p.ParamID })
		case formats.KindRasterizerState:
			entry.RasterizerStates = removeParam(entry.RasterizerStates, id,
				func(p formats.RasterizerStateParam) formats.ParamID { return p.ParamID })
		case formats.KindSampler:
			entry.Samplers = removeParam(entry.Samplers, id,
				func(p formats.SamplerParam) formats.ParamID { return p.ParamID })
		case formats.KindTexture:
			entry.Textures = removeParam(entry.Textures, id,
				func(p formats.TextureParam) formats.ParamID { return p.ParamID })
		}
	}
	SortParameters(entry)
}

// SortParameters restores the canonical ascending ParamID ordering in all
// seven lists. Serializers and diff tools rely on this ordering.
func SortParameters(entry *formats.MatlEntry) {
	sortParams(entry.BlendStates, func(p formats.BlendStateParam) formats.ParamID { return p.ParamID })
	sortParams(entry.Floats, func(p formats.FloatParam) formats.ParamID { return p.ParamID })
	sortParams(entry.Booleans, func(p formats.BooleanParam) formats.ParamID { return p.ParamID })
	sortParams(entry.Vectors, func(p formats.Vector4Param) formats.ParamID { return p.ParamID })
	sortParams(entry.RasterizerStates, func(p formats.RasterizerStateParam) formats.ParamID { return p.ParamID })
	sortParams(entry.Samplers, func(p formats.SamplerParam) formats.ParamID { return p.ParamID })
	sortParams(entry.Textures, func(p formats.TextureParam) formats.ParamID { return p.ParamID })
}

func sortParams[T any](s []T, id func(T) formats.ParamID) {
	sort.SliceStable(s, func(i, j int) bool { return id(s[i]) < id(s[j]) })
}

func removeParam[T any](s []T, target formats.ParamID, id func(T) formats.ParamID) []T {
	for i := range s {
		if id(s[i]) == target {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}

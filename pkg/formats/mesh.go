package formats

// MeshAttribute is a named vertex attribute on a mesh object. Only the name
// matters for cross-file validation; the vector data stays with the binary
// tooling.
type MeshAttribute struct {
	Name string `json:"name"`
}

// MeshObject is a drawable subset of a mesh. Objects are identified by
// (Name, Subindex); names repeat for meshes split across materials.
type MeshObject struct {
	Name               string          `json:"name"`
	Subindex           int64           `json:"subindex"`
	TextureCoordinates []MeshAttribute `json:"texture_coordinates"`
	ColorSets          []MeshAttribute `json:"color_sets"`
}

// AttributeNames returns the texture coordinate and color set attribute
// names available to shaders.
func (o *MeshObject) AttributeNames() []string {
	names := make([]string, 0, len(o.TextureCoordinates)+len(o.ColorSets))
	for _, a := range o.TextureCoordinates {
		names = append(names, a.Name)
	}
	for _, a := range o.ColorSets {
		names = append(names, a.Name)
	}
	return names
}

// Mesh is a mesh geometry file (model.numshb).
type Mesh struct {
	MajorVersion uint16       `json:"major_version"`
	MinorVersion uint16       `json:"minor_version"`
	Objects      []MeshObject `json:"objects"`
}

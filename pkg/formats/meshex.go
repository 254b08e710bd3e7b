package formats

// MeshExEntry holds precomputed bounds for one mesh object.
type MeshExEntry struct {
	MeshObjectName     string     `json:"mesh_object_name"`
	MeshObjectSubindex int64      `json:"mesh_object_subindex"`
	BoundingSphere     [4]float32 `json:"bounding_sphere"`
}

// MeshEx is a mesh bounds file (model.numshexb).
type MeshEx struct {
	AllBoundingSphere [4]float32    `json:"all_data_bounding_sphere"`
	Entries           []MeshExEntry `json:"entries"`
}

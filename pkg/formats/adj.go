package formats

// AdjEntry holds vertex adjacency data for one mesh object. Entries are
// matched to mesh objects by index.
type AdjEntry struct {
	MeshObjectIndex int   `json:"mesh_object_index"`
	VertexAdjacency []int `json:"vertex_adjacency,omitempty"`
}

// Adj is a vertex adjacency file (model.adjb), required by RENORMAL
// materials for normal recalculation.
type Adj struct {
	Entries []AdjEntry `json:"entries"`
}

// HasEntryForIndex reports whether any entry targets the mesh object index.
func (a *Adj) HasEntryForIndex(index int) bool {
	for _, e := range a.Entries {
		if e.MeshObjectIndex == index {
			return true
		}
	}
	return false
}

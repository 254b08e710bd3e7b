package formats

// ModlEntry binds one mesh object to a material by label.
type ModlEntry struct {
	MeshObjectName     string `json:"mesh_object_name"`
	MeshObjectSubindex int64  `json:"mesh_object_subindex"`
	MaterialLabel      string `json:"material_label"`
}

// Modl is a model binding file (model.numdlb). It names the sibling files
// and assigns materials to mesh objects.
type Modl struct {
	MajorVersion      uint16      `json:"major_version"`
	MinorVersion      uint16      `json:"minor_version"`
	ModelName         string      `json:"model_name"`
	SkeletonFileName  string      `json:"skeleton_file_name"`
	MaterialFileNames []string    `json:"material_file_names"`
	AnimationFileName string      `json:"animation_file_name,omitempty"`
	MeshFileName      string      `json:"mesh_file_name"`
	Entries           []ModlEntry `json:"entries"`
}

package formats

// SkelBone is one bone in a skeleton hierarchy. ParentIndex is -1 for
// roots.
type SkelBone struct {
	Name        string        `json:"name"`
	ParentIndex int           `json:"parent_index"`
	Transform   [4][4]float32 `json:"transform"`
}

// Skel is a skeleton file (model.nusktb).
type Skel struct {
	MajorVersion uint16     `json:"major_version"`
	MinorVersion uint16     `json:"minor_version"`
	Bones        []SkelBone `json:"bones"`
}

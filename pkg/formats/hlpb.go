package formats

// HlpbAimConstraint aims a helper bone at a target bone.
type HlpbAimConstraint struct {
	Name            string `json:"name"`
	AimBoneName1    string `json:"aim_bone_name1"`
	TargetBoneName1 string `json:"target_bone_name1"`
}

// HlpbOrientConstraint copies orientation from a source to a target bone.
type HlpbOrientConstraint struct {
	Name           string  `json:"name"`
	ParentBoneName string  `json:"parent_bone_name1"`
	SourceBoneName string  `json:"source_bone_name"`
	TargetBoneName string  `json:"target_bone_name"`
	QuatScale      Vector4 `json:"quat_scale"`
}

// Hlpb is a helper bone constraint file (model.nuhlpb).
type Hlpb struct {
	MajorVersion      uint16                 `json:"major_version"`
	MinorVersion      uint16                 `json:"minor_version"`
	AimConstraints    []HlpbAimConstraint    `json:"aim_constraints"`
	OrientConstraints []HlpbOrientConstraint `json:"orient_constraints"`
}

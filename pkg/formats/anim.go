package formats

// AnimGroup is one group of animated nodes (transform, material, visibility
// or camera tracks). Track data stays with the binary tooling.
type AnimGroup struct {
	GroupType string `json:"group_type"`
	NodeCount int    `json:"node_count"`
}

// Anim is an animation file (.nuanmb).
type Anim struct {
	MajorVersion    uint16      `json:"major_version"`
	MinorVersion    uint16      `json:"minor_version"`
	FinalFrameIndex float32     `json:"final_frame_index"`
	Groups          []AnimGroup `json:"groups"`
}

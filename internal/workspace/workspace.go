// Package workspace tracks the set of loaded model folders: per-folder
// state with validation results and unsaved-change flags, and the path
// affinity ranking used to associate animation and physics folders with
// model folders.
package workspace

import (
	"github.com/Faultbox/ssbhlint/internal/validation"
	"github.com/Faultbox/ssbhlint/pkg/formats"
	"github.com/Faultbox/ssbhlint/pkg/shaderdb"
)

// SwingPrc marks a folder's swing physics config. Parsing the param file is
// external; only its presence matters here.
type SwingPrc struct {
	Path string
}

// FolderState is one loaded folder plus the application state attached to
// it. The validation report is replaced wholesale by Validate, never
// mutated in place.
type FolderState struct {
	Model      formats.ModelFolder
	Validation *validation.Report
	Changed    FileChanged
	SwingPrc   *SwingPrc
}

// NewFolderState wraps a loaded folder with empty application state.
func NewFolderState(model formats.ModelFolder, swingPrc *SwingPrc) *FolderState {
	return &FolderState{
		Model:      model,
		Validation: &validation.Report{},
		Changed:    NewFileChanged(&model),
		SwingPrc:   swingPrc,
	}
}

// Validate recomputes the folder's validation report.
func (s *FolderState) Validate(db *shaderdb.Database, defaultTextures []string) {
	s.Validation = validation.Validate(&s.Model, db, defaultTextures)
}

// FileChanged tracks unsaved edits per file slot, one flag per slot in slot
// order.
type FileChanged struct {
	Meshes   []bool
	Skels    []bool
	Matls    []bool
	Modls    []bool
	Adjs     []bool
	Anims    []bool
	Hlpbs    []bool
	MeshExes []bool
	Nutexbs  []bool
}

// NewFileChanged returns all-clean flags sized to the folder's slots.
func NewFileChanged(model *formats.ModelFolder) FileChanged {
	return FileChanged{
		Meshes:   make([]bool, len(model.Meshes)),
		Skels:    make([]bool, len(model.Skels)),
		Matls:    make([]bool, len(model.Matls)),
		Modls:    make([]bool, len(model.Modls)),
		Adjs:     make([]bool, len(model.Adjs)),
		Anims:    make([]bool, len(model.Anims)),
		Hlpbs:    make([]bool, len(model.Hlpbs)),
		MeshExes: make([]bool, len(model.MeshExes)),
		Nutexbs:  make([]bool, len(model.Nutexbs)),
	}
}

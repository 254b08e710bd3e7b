package formats

import (
	"errors"
	"testing"
)

func TestFindByNameSkipsFailedSlots(t *testing.T) {
	folder := ModelFolder{
		Matls: []Slot[Matl]{
			{Name: MatlFileName, Err: errors.New("parse failed")},
		},
	}
	if folder.FindMatl() != nil {
		t.Error("expected nil for a failed slot")
	}

	folder.Matls = append(folder.Matls, Slot[Matl]{
		Name: MatlFileName,
		Data: &Matl{MajorVersion: 1, MinorVersion: 6},
	})
	matl := folder.FindMatl()
	if matl == nil {
		t.Fatal("expected the parsed matl")
	}
	if matl.MinorVersion != 6 {
		t.Errorf("expected minor version 6, got %d", matl.MinorVersion)
	}
}

func TestFindByNameIgnoresOtherNames(t *testing.T) {
	folder := ModelFolder{
		Matls: []Slot[Matl]{
			{Name: "metamon.numatb", Data: &Matl{}},
		},
	}
	if folder.FindMatl() != nil {
		t.Error("expected only model.numatb to match")
	}
}

func TestIsModelFolder(t *testing.T) {
	var folder ModelFolder
	if folder.IsModelFolder() {
		t.Error("empty folder should not be a model folder")
	}
	folder.Anims = []Slot[Anim]{{Name: "a00wait1.nuanmb", Data: &Anim{}}}
	if folder.IsModelFolder() {
		t.Error("animation only folder should not be a model folder")
	}
	if !folder.HasAnimations() {
		t.Error("expected HasAnimations")
	}

	folder.Meshes = []Slot[Mesh]{{Name: MeshFileName, Data: &Mesh{}}}
	if !folder.IsModelFolder() {
		t.Error("folder with a mesh should be a model folder")
	}
}

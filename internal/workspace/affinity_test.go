package workspace

import (
	"testing"

	"github.com/Faultbox/ssbhlint/pkg/formats"
)

func animFolder(path string) *FolderState {
	return NewFolderState(formats.ModelFolder{
		Path: path,
		Anims: []formats.Slot[formats.Anim]{
			{Name: "a00wait1.nuanmb", Data: &formats.Anim{}},
		},
	}, nil)
}

func modelFolder(path string) *FolderState {
	return NewFolderState(formats.ModelFolder{Path: path}, nil)
}

func TestFindAnimFoldersRanking(t *testing.T) {
	model := modelFolder("/model/body/c00")
	folders := []*FolderState{
		animFolder("/motion/pump/c00"),
		animFolder("/motion/body/c00"),
		animFolder("/motion/body/c01"),
	}

	ranked := FindAnimFolders(model, folders)

	// Weakest affinity first, best match last.
	wantIndices := []int{2, 0, 1}
	if len(ranked) != len(wantIndices) {
		t.Fatalf("expected %d folders, got %d", len(wantIndices), len(ranked))
	}
	for i, want := range wantIndices {
		if ranked[i].Index != want {
			t.Errorf("ranked[%d].Index = %d, want %d", i, ranked[i].Index, want)
		}
	}
	if best := ranked[len(ranked)-1].Folder.Model.Path; best != "/motion/body/c00" {
		t.Errorf("expected best match /motion/body/c00, got %s", best)
	}
}

func TestFindAnimFoldersSkipsNonAnimFolders(t *testing.T) {
	model := modelFolder("/model/body/c00")
	folders := []*FolderState{
		modelFolder("/model/body/c01"),
		animFolder("/motion/body/c00"),
	}

	ranked := FindAnimFolders(model, folders)
	if len(ranked) != 1 || ranked[0].Index != 1 {
		t.Errorf("expected only the animation folder, got %+v", ranked)
	}
}

func TestFindSwingFolders(t *testing.T) {
	model := modelFolder("/fighter/mario/model/body/c00")
	swing := NewFolderState(formats.ModelFolder{Path: "/fighter/mario/motion/body/c00"},
		&SwingPrc{Path: "/fighter/mario/motion/body/c00/swing.prc"})
	folders := []*FolderState{
		modelFolder("/fighter/mario/model/body/c01"),
		swing,
	}

	ranked := FindSwingFolders(model, folders)
	if len(ranked) != 1 || ranked[0].Folder != swing {
		t.Errorf("expected only the swing folder, got %+v", ranked)
	}
}

func TestPathAffinity(t *testing.T) {
	cases := []struct {
		model string
		other string
		want  int
	}{
		{"/mario/model/body/c00", "/mario/motion/body/c00", 2},
		{"/mario/model/body/c00", "/mario/motion/pump/c00", 1},
		{"/mario/model/body/c00", "/luigi/motion/pump/c01", 0},
		{"/mario/model/body/c00", "/mario/model/body/c00", 4},
		// Windows separators normalize to the same components.
		{"/mario/model/body/c00", `C:\mario\motion\body\c00`, 2},
	}
	for _, c := range cases {
		if got := pathAffinity(c.model, c.other); got != c.want {
			t.Errorf("pathAffinity(%q, %q) = %d, want %d", c.model, c.other, got, c.want)
		}
	}
}

func TestFolderDisplayName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/fighter/mario/motion/body/c00", "mario/motion/body/c00"},
		{"mario/c00", "mario/c00"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FolderDisplayName(c.path); got != c.want {
			t.Errorf("FolderDisplayName(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestEditorTitle(t *testing.T) {
	if got := EditorTitle("/fighter/mario/model/body/c00", "model.numatb"); got != "c00/model.numatb" {
		t.Errorf("expected c00/model.numatb, got %s", got)
	}
}

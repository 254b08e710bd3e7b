package formats

// Well known file names inside a model folder.
const (
	MeshFileName   = "model.numshb"
	SkelFileName   = "model.nusktb"
	MatlFileName   = "model.numatb"
	ModlFileName   = "model.numdlb"
	AdjFileName    = "model.adjb"
	HlpbFileName   = "model.nuhlpb"
	MeshExFileName = "model.numshexb"
)

// Slot is one independently fallible file in a model folder. A slot whose
// Err is set still occupies its position for display purposes but is
// excluded from all cross-file checks.
type Slot[T any] struct {
	Name string
	Data *T
	Err  error
}

// Ok reports whether the slot holds usable data.
func (s Slot[T]) Ok() bool {
	return s.Err == nil && s.Data != nil
}

// ModelFolder is the parsed contents of one folder. Slots are created on
// folder load and replaced wholesale on save or reload; readers never
// mutate them.
type ModelFolder struct {
	Path string

	Meshes   []Slot[Mesh]
	Skels    []Slot[Skel]
	Matls    []Slot[Matl]
	Modls    []Slot[Modl]
	Adjs     []Slot[Adj]
	Anims    []Slot[Anim]
	Hlpbs    []Slot[Hlpb]
	MeshExes []Slot[MeshEx]
	Nutexbs  []Slot[Nutexb]
}

func findByName[T any](slots []Slot[T], name string) *T {
	for _, s := range slots {
		if s.Name == name && s.Ok() {
			return s.Data
		}
	}
	return nil
}

// FindMesh returns the parsed model.numshb, if any.
func (f *ModelFolder) FindMesh() *Mesh { return findByName(f.Meshes, MeshFileName) }

// FindSkel returns the parsed model.nusktb, if any.
func (f *ModelFolder) FindSkel() *Skel { return findByName(f.Skels, SkelFileName) }

// FindMatl returns the parsed model.numatb, if any.
func (f *ModelFolder) FindMatl() *Matl { return findByName(f.Matls, MatlFileName) }

// FindModl returns the parsed model.numdlb, if any.
func (f *ModelFolder) FindModl() *Modl { return findByName(f.Modls, ModlFileName) }

// FindAdj returns the parsed model.adjb, if any.
func (f *ModelFolder) FindAdj() *Adj { return findByName(f.Adjs, AdjFileName) }

// FindHlpb returns the parsed model.nuhlpb, if any.
func (f *ModelFolder) FindHlpb() *Hlpb { return findByName(f.Hlpbs, HlpbFileName) }

// IsModelFolder reports whether the folder contains files used for mesh
// rendering, as opposed to an animation or physics only folder.
func (f *ModelFolder) IsModelFolder() bool {
	return len(f.Meshes) > 0 || len(f.Modls) > 0 || len(f.Skels) > 0 || len(f.Matls) > 0
}

// HasAnimations reports whether the folder contains any animation files.
func (f *ModelFolder) HasAnimations() bool {
	return len(f.Anims) > 0
}

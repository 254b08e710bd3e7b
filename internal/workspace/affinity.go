package workspace

import (
	"sort"
	"strings"
)

// RankedFolder pairs a candidate folder with its index in the input slice.
type RankedFolder struct {
	Index  int
	Folder *FolderState
}

// FindAnimFolders ranks the folders containing animations by affinity with
// the model folder, weakest match first. Consumers iterate in reverse for
// best-first display.
func FindAnimFolders(model *FolderState, folders []*FolderState) []RankedFolder {
	return findFoldersByPathAffinity(model, folders, func(s *FolderState) bool {
		return s.Model.HasAnimations()
	})
}

// FindSwingFolders ranks the folders containing a swing physics config by
// affinity with the model folder, weakest match first.
func FindSwingFolders(model *FolderState, folders []*FolderState) []RankedFolder {
	return findFoldersByPathAffinity(model, folders, func(s *FolderState) bool {
		return s.SwingPrc != nil
	})
}

func findFoldersByPathAffinity(model *FolderState, folders []*FolderState,
	predicate func(*FolderState) bool) []RankedFolder {
	var ranked []RankedFolder
	for i, f := range folders {
		if predicate(f) {
			ranked = append(ranked, RankedFolder{Index: i, Folder: f})
		}
	}

	// Sort in increasing order of affinity with the model folder. The sort
	// is stable so predicate-tied folders keep their input order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return pathAffinity(model.Model.Path, ranked[i].Folder.Model.Path) <
			pathAffinity(model.Model.Path, ranked[j].Folder.Model.Path)
	})
	return ranked
}

// pathAffinity counts matching path components from the end of both paths.
// Consider the model folder "/mario/model/body/c00": the folder
// "/mario/motion/body/c00" scores 2, "/mario/motion/pump/c00" scores 1.
func pathAffinity(modelPath, otherPath string) int {
	a := pathComponents(modelPath)
	b := pathComponents(otherPath)
	count := 0
	for i, j := len(a)-1, len(b)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if a[i] != b[j] {
			break
		}
		count++
	}
	return count
}

func pathComponents(p string) []string {
	var components []string
	for _, c := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if c != "" && c != "." {
			components = append(components, c)
		}
	}
	return components
}

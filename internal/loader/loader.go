// Package loader reads model folders into memory. Binary SSBH parsing is
// handled by external tooling; this loader consumes the JSON dump form
// (ssbh_data_json style, "model.numatb.json" next to "model.numatb") so a
// folder's files arrive as already-structured records. A file that fails to
// parse still occupies its slot with the error recorded.
package loader

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faultbox/ssbhlint/internal/workspace"
	"github.com/Faultbox/ssbhlint/pkg/formats"
)

const (
	dumpSuffix   = ".json"
	swingPrcName = "swing.prc"
)

// LoadFolder reads every recognized file dump directly inside dir. The
// returned folder may be empty; only I/O errors on the directory itself
// fail the load.
func LoadFolder(dir string) (formats.ModelFolder, error) {
	folder := formats.ModelFolder{Path: filepath.ToSlash(dir)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return folder, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if !strings.HasSuffix(name, dumpSuffix) {
			continue
		}
		// Slots are keyed by the binary file name the dump describes.
		fileName := strings.TrimSuffix(name, dumpSuffix)
		path := filepath.Join(dir, name)

		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".numshb":
			folder.Meshes = append(folder.Meshes, loadSlot[formats.Mesh](path, fileName))
		case ".nusktb":
			folder.Skels = append(folder.Skels, loadSlot[formats.Skel](path, fileName))
		case ".numatb":
			folder.Matls = append(folder.Matls, loadSlot[formats.Matl](path, fileName))
		case ".numdlb":
			folder.Modls = append(folder.Modls, loadSlot[formats.Modl](path, fileName))
		case ".adjb":
			folder.Adjs = append(folder.Adjs, loadSlot[formats.Adj](path, fileName))
		case ".nuanmb":
			folder.Anims = append(folder.Anims, loadSlot[formats.Anim](path, fileName))
		case ".nuhlpb":
			folder.Hlpbs = append(folder.Hlpbs, loadSlot[formats.Hlpb](path, fileName))
		case ".numshexb":
			folder.MeshExes = append(folder.MeshExes, loadSlot[formats.MeshEx](path, fileName))
		case ".nutexb":
			folder.Nutexbs = append(folder.Nutexbs, loadSlot[formats.Nutexb](path, fileName))
		}
	}
	return folder, nil
}

func loadSlot[T any](path, fileName string) formats.Slot[T] {
	slot := formats.Slot[T]{Name: fileName}
	data, err := os.ReadFile(path)
	if err != nil {
		slot.Err = err
		return slot
	}
	value := new(T)
	if err := json.Unmarshal(data, value); err != nil {
		slot.Err = fmt.Errorf("parsing %s: %w", fileName, err)
		return slot
	}
	slot.Data = value
	return slot
}

// findSwingPrc reports the swing physics config next to the dumps, if any.
func findSwingPrc(dir string) *workspace.SwingPrc {
	path := filepath.Join(dir, swingPrcName)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return &workspace.SwingPrc{Path: filepath.ToSlash(path)}
}

// LoadWorkspace walks root recursively and loads every directory that
// contains at least one recognized file, mirroring "add folder to
// workspace" in the editor. Folders come back sorted by path.
func LoadWorkspace(root string) ([]*workspace.FolderState, error) {
	var states []*workspace.FolderState

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		folder, err := LoadFolder(path)
		if err != nil {
			return err
		}
		swingPrc := findSwingPrc(path)
		if isEmptyFolder(&folder) && swingPrc == nil {
			return nil
		}
		states = append(states, workspace.NewFolderState(folder, swingPrc))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking workspace %s: %w", root, err)
	}

	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Model.Path < states[j].Model.Path
	})
	return states, nil
}

func isEmptyFolder(f *formats.ModelFolder) bool {
	return len(f.Meshes) == 0 && len(f.Skels) == 0 && len(f.Matls) == 0 &&
		len(f.Modls) == 0 && len(f.Adjs) == 0 && len(f.Anims) == 0 &&
		len(f.Hlpbs) == 0 && len(f.MeshExes) == 0 && len(f.Nutexbs) == 0
}

// SaveMatl writes a material file dump back next to its folder, preserving
// the dump naming convention.
func SaveMatl(dir, fileName string, matl *formats.Matl) error {
	data, err := json.MarshalIndent(matl, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", fileName, err)
	}
	path := filepath.Join(dir, fileName+dumpSuffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

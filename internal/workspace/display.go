package workspace

import (
	"path"
	"strings"
)

// FolderDisplayName returns enough trailing path components to tell folders
// apart in a list: "fighter/mario/motion/body/c00" shows as
// "mario/motion/body/c00".
func FolderDisplayName(folderPath string) string {
	components := pathComponents(folderPath)
	if len(components) > 4 {
		components = components[len(components)-4:]
	}
	return strings.Join(components, "/")
}

// EditorTitle returns a simplified title for a file editor:
// "fighter/mario/motion/body/c00" and "model.numatb" become
// "c00/model.numatb".
func EditorTitle(folderPath, fileName string) string {
	return path.Base(strings.ReplaceAll(folderPath, "\\", "/")) + "/" + fileName
}

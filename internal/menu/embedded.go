package menu

import "github.com/mapmenu/mapmenu/internal/host"

// EmbeddedSource reports whether node belongs to content embedded from
// another project file, and which file its definition lives in. Nodes
// without the "embedded" marker resolve to the project's own file.
func EmbeddedSource(node host.TreeNode, project host.Project) (embedded bool, filename string) {
	// The host only sets the marker on the top-most node of an embedded
	// sub-tree; descendants inherit the source file via the upward walk.
	if node.CustomProperty("embedded") != "" {
		return true, resolveEmbeddedFilename(node, project)
	}
	return false, project.AbsoluteFilePath()
}

// resolveEmbeddedFilename resolves the "embedded_project" custom property
// to an absolute path, walking up parent pointers until a node yields a
// non-empty path. Terminates at the root; a tree with no resolvable
// property yields "".
func resolveEmbeddedFilename(node host.TreeNode, project host.Project) string {
	filename := project.ReadPath(node.CustomProperty("embedded_project"))
	if filename == "" && node.Parent() != nil {
		return resolveEmbeddedFilename(node.Parent(), project)
	}
	return filename
}

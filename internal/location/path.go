package location

import (
	"facility-service/internal/model"
)

// ChildPath builds the materialised path for a node created under the given
// parent path. The returned slice is a copy; the parent's path is never
// aliased.
func ChildPath(parent model.LocationPath, id, description string) model.LocationPath {
	path := make(model.LocationPath, 0, len(parent)+1)
	path = append(path, parent...)
	path = append(path, model.PathEntry{ID: id, Description: description})
	return path
}

// RootPath builds the single-entry path of a tenant's root location
func RootPath(id, description string) model.LocationPath {
	return model.LocationPath{{ID: id, Description: description}}
}

// RewriteEntry returns a copy of path with the description of the entry
// matching id replaced. The second return reports whether the id was found.
// All other entries are left untouched.
func RewriteEntry(path model.LocationPath, id, description string) (model.LocationPath, bool) {
	rewritten := make(model.LocationPath, len(path))
	found := false
	for i, entry := range path {
		if entry.ID == id {
			entry.Description = description
			found = true
		}
		rewritten[i] = entry
	}
	return rewritten, found
}

// LevelLabels flattens a materialised path into the ordered level labels
// used by CSV rows: every description below the root, root first omitted.
func LevelLabels(path model.LocationPath) []string {
	if len(path) <= 1 {
		return nil
	}
	labels := make([]string, 0, len(path)-1)
	for _, entry := range path[1:] {
		labels = append(labels, entry.Description)
	}
	return labels
}

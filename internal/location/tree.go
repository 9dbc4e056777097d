package location

import (
	"facility-service/internal/model"
)

// TreeNode is a location with its children nested, as returned by the
// location list endpoint.
type TreeNode struct {
	model.Location
	Children []*TreeNode `json:"children"`
}

// BuildTree converts a flat location snapshot into nested root nodes.
// Children keep the order of the input slice. Nodes whose parent is missing
// from the snapshot are dropped rather than promoted to roots.
func BuildTree(locations []model.Location) []*TreeNode {
	if len(locations) == 0 {
		return []*TreeNode{}
	}

	nodes := make(map[string]*TreeNode, len(locations))
	for i := range locations {
		nodes[locations[i].ID] = &TreeNode{
			Location: locations[i],
			Children: []*TreeNode{},
		}
	}

	roots := []*TreeNode{}
	for i := range locations {
		node := nodes[locations[i].ID]
		if locations[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*locations[i].ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}

	return roots
}

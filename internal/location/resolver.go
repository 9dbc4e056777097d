package location

import (
	"strings"

	"facility-service/internal/model"
)

// ResolveByLabels finds the single location whose materialised path matches
// the ordered level labels. It works purely on the supplied snapshot and
// performs no database access.
//
// An empty label list resolves to the tenant's root (the unique location
// whose path has length 1). Otherwise a candidate matches when its path is
// exactly one longer than the label list (root plus the labels) and every
// label equals the corresponding path entry's description, compared
// case-insensitively. Anything other than exactly one match is ErrNotFound;
// multiple path-length-1 nodes on a root lookup is ErrAmbiguousRoot.
func ResolveByLabels(locations []model.Location, labels []string) (*model.Location, error) {
	if len(labels) == 0 {
		var root *model.Location
		for i := range locations {
			if len(locations[i].MaterialisedPath) == 1 {
				if root != nil {
					return nil, ErrAmbiguousRoot
				}
				root = &locations[i]
			}
		}
		if root == nil {
			return nil, ErrNotFound
		}
		return root, nil
	}

	var match *model.Location
	for i := range locations {
		path := locations[i].MaterialisedPath

		// Path = root + provided labels
		if len(path) != len(labels)+1 {
			continue
		}

		ok := true
		for j, label := range labels {
			if !strings.EqualFold(path[j+1].Description, label) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		if match != nil {
			// Ties should be impossible under sibling uniqueness; never
			// silently pick one.
			return nil, ErrNotFound
		}
		match = &locations[i]
	}

	if match == nil {
		return nil, ErrNotFound
	}
	return match, nil
}

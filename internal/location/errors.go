package location

import (
	"errors"
)

// Structural tree errors. These are always fatal to the single operation
// that raised them and are surfaced to the caller as-is.
var (
	// ErrNotFound indicates the location id does not exist within the tenant
	ErrNotFound = errors.New("location not found")

	// ErrParentNotFound indicates the parent id does not resolve within the tenant
	ErrParentNotFound = errors.New("parent location not found")

	// ErrDuplicateSibling indicates another child of the same parent already
	// carries this description (case-insensitive)
	ErrDuplicateSibling = errors.New("a child location with this description already exists at this location")

	// ErrRootDeletionForbidden indicates an attempt to delete the tenant's root
	ErrRootDeletionForbidden = errors.New("the root location cannot be deleted")

	// ErrHasChildren indicates an attempt to delete a location that still has children
	ErrHasChildren = errors.New("location still has child locations")

	// ErrAmbiguousRoot indicates more than one parentless location exists for
	// the tenant; the tree invariant forbids this but resolution checks anyway
	ErrAmbiguousRoot = errors.New("more than one root location found")

	// ErrRootExists indicates the tenant already has a root location
	ErrRootExists = errors.New("tenant already has a root location")
)

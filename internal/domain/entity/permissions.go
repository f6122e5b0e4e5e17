package entity

import (
	"maps"
	"reflect"
)

// Permissions is an opaque capability map attached to a staff member,
// e.g. {"editProducts": true, "manageUsers": false}.
type Permissions map[string]any

// OrEmpty returns a non-nil permission map.
func (p Permissions) OrEmpty() Permissions {
	if p == nil {
		return Permissions{}
	}

	return p
}

// Clone returns a shallow copy of the permissions.
func (p Permissions) Clone() Permissions {
	return maps.Clone(p.OrEmpty())
}

// MergeGranted returns a copy of p with every flag granted (true) in other switched on.
// Flags are never revoked by a merge.
func (p Permissions) MergeGranted(other Permissions) Permissions {
	merged := p.Clone()
	for key, value := range other {
		if granted, ok := value.(bool); ok && granted {
			merged[key] = true
		}
	}

	return merged
}

// Equal reports whether both maps hold the same keys and values.
// Nil and empty maps compare equal.
func (p Permissions) Equal(other Permissions) bool {
	return reflect.DeepEqual(p.OrEmpty(), other.OrEmpty())
}

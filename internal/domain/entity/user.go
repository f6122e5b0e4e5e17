// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// CompanyStaffUser is a staff member's entry under companies/{companyId}/users.
// Legacy logins created one such entry per anonymous auth UID; LastAuthUID links
// those duplicates back to the canonical staff identifier.
type CompanyStaffUser struct {
	ID          string      // Document ID, either a staff ID or a legacy auth UID.
	Role        Role        // Staff role, may be empty on legacy entries.
	DisplayName string      // Display name, may be empty on legacy entries.
	Permissions Permissions // Capability map.
	Active      bool        // Whether the entry is active.
	LastAuthUID string      // Auth UID the entry was last signed in with.
}

// StaffUserPatch is the canonical data written back to a staff member's documents.
type StaffUserPatch struct {
	Role        Role        `json:"role"`
	DisplayName string      `json:"displayName"`
	Permissions Permissions `json:"permissions"`
}

// DuplicateStaffUser is a legacy entry that duplicates a canonical staff member.
type DuplicateStaffUser struct {
	ID          string `json:"id"`
	CanonicalID string `json:"canonicalId"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// StaffDedupePlan is the set of writes that collapses duplicates onto canonical staff members.
type StaffDedupePlan struct {
	CompanyID  string                    `json:"companyId"`
	Updates    map[string]StaffUserPatch `json:"updates"`
	Duplicates []DuplicateStaffUser      `json:"duplicates"`
}

// IsEmpty reports whether applying the plan would write nothing.
func (p *StaffDedupePlan) IsEmpty() bool {
	return len(p.Updates) == 0 && len(p.Duplicates) == 0
}

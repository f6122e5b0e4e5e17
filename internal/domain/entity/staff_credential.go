// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

const (
	// DefaultDisplayName is returned when a credential carries no display name.
	DefaultDisplayName = "Staff"
)

// StaffCredential is the stored PIN credential of one staff member.
// After migration a record holds PinHash and no legacy PIN; unmigrated records hold only the legacy PIN.
type StaffCredential struct {
	ID           string      // The staff identifier, also the document ID.
	CompanyCode  string      // Organization-scoped namespace for the PIN, uppercase.
	CompanyID    string      // The company the staff member belongs to.
	PinHash      string      // Hex digest of the normalized (companyCode, pin) pair. Empty until migrated.
	LegacyPin    string      // Plaintext PIN of an unmigrated record.
	HasLegacyPin bool        // Whether the plaintext field is present at all, even when empty.
	DisplayName  string      // Staff display name.
	Role         Role        // Staff role as stored.
	Permissions  Permissions // Opaque capability map.
}

// NeedsMigration reports whether the record still authenticates through a plaintext PIN only.
func (c *StaffCredential) NeedsMigration() bool {
	return c.PinHash == "" && c.LegacyPin != ""
}

// NeedsCleanup reports whether a plaintext field lingers on a record that does not need migration.
func (c *StaffCredential) NeedsCleanup() bool {
	return !c.NeedsMigration() && c.HasLegacyPin
}

// HasCompanyCode reports whether the record is scoped to a company at all.
func (c *StaffCredential) HasCompanyCode() bool {
	return strings.TrimSpace(c.CompanyCode) != ""
}

// Profile returns the public profile of the staff member with defaults applied.
func (c *StaffCredential) Profile() *StaffProfile {
	displayName := c.DisplayName
	if displayName == "" {
		displayName = DefaultDisplayName
	}

	return &StaffProfile{
		StaffID:     c.ID,
		CompanyID:   c.CompanyID,
		DisplayName: displayName,
		Role:        c.Role.OrDefault(),
		Permissions: c.Permissions.OrEmpty(),
	}
}

// StaffProfile is what a successful PIN verification reveals about a staff member.
type StaffProfile struct {
	StaffID     string      `json:"staffId"`
	CompanyID   string      `json:"companyId"`
	DisplayName string      `json:"displayName"`
	Role        Role        `json:"role"`
	Permissions Permissions `json:"permissions"`
}

// NormalizeCompanyCode trims and uppercases a company code.
func NormalizeCompanyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

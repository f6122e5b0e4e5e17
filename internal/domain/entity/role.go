// Package entity contains the core business objects of the project.
package entity

// Role represents the role a staff member holds inside a company.
type Role string

const (
	// RoleStaff indicates a regular staff member. It is the default for records without a role.
	RoleStaff Role = "staff"
	// RoleManager indicates a manager who can administer other staff.
	RoleManager Role = "manager"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one the provisioning tools may assign.
// Stored roles are returned verbatim on authentication even when not valid here.
func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleManager:
		return true
	default:
		return false
	}
}

// OrDefault returns the role, or RoleStaff when it is empty.
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleStaff
	}

	return r
}

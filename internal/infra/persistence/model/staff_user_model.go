package model

import (
	"github.com/JeffJagr/SmartBar-v3/internal/domain/constants"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
)

// ToCompanyStaffUser decodes a companies/{companyId}/users document.
func ToCompanyStaffUser(id string, data map[string]any) *entity.CompanyStaffUser {
	return &entity.CompanyStaffUser{
		ID:          id,
		Role:        entity.Role(stringValue(data, fieldRole)),
		DisplayName: stringValue(data, fieldDisplayName),
		Permissions: entity.Permissions(mapValue(data, fieldPermissions)),
		Active:      boolValue(data, fieldActive),
		LastAuthUID: stringValue(data, fieldLastAuthUID),
	}
}

// FromStaffUserPatch encodes the canonical staff data shared by all of a staff member's documents.
func FromStaffUserPatch(patch entity.StaffUserPatch) map[string]any {
	return map[string]any{
		fieldRole:        patch.Role.String(),
		fieldDisplayName: patch.DisplayName,
		fieldPermissions: map[string]any(patch.Permissions.OrEmpty()),
	}
}

// CompanyUserPatch is the patch written to companies/{companyId}/users/{id}; it also reactivates the entry.
func CompanyUserPatch(id string, patch entity.StaffUserPatch) map[string]any {
	data := FromStaffUserPatch(patch)
	data[fieldID] = id
	data[fieldActive] = true

	return data
}

// GlobalUserPatch is the patch written to users/{id}.
func GlobalUserPatch(companyID string, patch entity.StaffUserPatch) map[string]any {
	data := FromStaffUserPatch(patch)
	data[constants.FieldCompanyID] = companyID

	return data
}

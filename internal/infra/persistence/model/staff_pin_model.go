package model

import (
	"github.com/JeffJagr/SmartBar-v3/internal/domain/constants"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
)

// Field names of a staffPins document beyond the shared constants.
const (
	fieldDisplayName = "displayName"
	fieldRole        = "role"
	fieldPermissions = "permissions"
	fieldActive      = "active"
	fieldLastAuthUID = "lastAuthUid"
	fieldID          = "id"
)

// ToStaffCredential decodes a staffPins document.
// A present "pin" field marks the record as holding plaintext even when the value is empty.
func ToStaffCredential(id string, data map[string]any) *entity.StaffCredential {
	legacyPin, hasLegacyPin := stringField(data, constants.FieldPin)

	return &entity.StaffCredential{
		ID:           id,
		CompanyCode:  stringValue(data, constants.FieldCompanyCode),
		CompanyID:    stringValue(data, constants.FieldCompanyID),
		PinHash:      stringValue(data, constants.FieldPinHash),
		LegacyPin:    legacyPin,
		HasLegacyPin: hasLegacyPin,
		DisplayName:  stringValue(data, fieldDisplayName),
		Role:         entity.Role(stringValue(data, fieldRole)),
		Permissions:  entity.Permissions(mapValue(data, fieldPermissions)),
	}
}

// FromStaffCredential encodes the hashed part of a credential for a merge write.
// The legacy plaintext PIN is deliberately never encoded.
func FromStaffCredential(cred *entity.StaffCredential) map[string]any {
	data := map[string]any{
		constants.FieldCompanyCode: entity.NormalizeCompanyCode(cred.CompanyCode),
		constants.FieldPinHash:     cred.PinHash,
		fieldRole:                  cred.Role.OrDefault().String(),
		fieldPermissions:           map[string]any(cred.Permissions.OrEmpty()),
	}
	if cred.CompanyID != "" {
		data[constants.FieldCompanyID] = cred.CompanyID
	}
	if cred.DisplayName != "" {
		data[fieldDisplayName] = cred.DisplayName
	}

	return data
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaffCredential_Profile_AppliesDefaults(t *testing.T) {
	cred := &StaffCredential{ID: "staff-1"}

	profile := cred.Profile()

	assert.Equal(t, &StaffProfile{
		StaffID:     "staff-1",
		CompanyID:   "",
		DisplayName: DefaultDisplayName,
		Role:        RoleStaff,
		Permissions: Permissions{},
	}, profile)
}

func TestStaffCredential_Profile_KeepsStoredValues(t *testing.T) {
	cred := &StaffCredential{
		ID:          "staff-2",
		CompanyID:   "company-9",
		DisplayName: "Nikita",
		Role:        Role("bartender"),
		Permissions: Permissions{"editProducts": true},
	}

	profile := cred.Profile()

	assert.Equal(t, "company-9", profile.CompanyID)
	assert.Equal(t, "Nikita", profile.DisplayName)
	assert.Equal(t, Role("bartender"), profile.Role)
	assert.Equal(t, Permissions{"editProducts": true}, profile.Permissions)
}

func TestStaffCredential_MigrationState(t *testing.T) {
	tests := []struct {
		name          string
		cred          StaffCredential
		wantMigration bool
		wantCleanup   bool
	}{
		{
			name:          "legacy only",
			cred:          StaffCredential{LegacyPin: "1234", HasLegacyPin: true},
			wantMigration: true,
		},
		{
			name:        "hashed with lingering plaintext",
			cred:        StaffCredential{PinHash: "abc", LegacyPin: "1234", HasLegacyPin: true},
			wantCleanup: true,
		},
		{
			name:        "empty plaintext field without hash",
			cred:        StaffCredential{HasLegacyPin: true},
			wantCleanup: true,
		},
		{
			name: "fully migrated",
			cred: StaffCredential{PinHash: "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMigration, tt.cred.NeedsMigration())
			assert.Equal(t, tt.wantCleanup, tt.cred.NeedsCleanup())
		})
	}
}

func TestNormalizeCompanyCode(t *testing.T) {
	assert.Equal(t, "VUE123", NormalizeCompanyCode("  vue123 "))
	assert.Equal(t, "", NormalizeCompanyCode("   "))
}

func TestCompanyTopic(t *testing.T) {
	assert.Equal(t, "c_Acme_Co_lowStock", CompanyTopic("Acme Co", "lowStock"))
	assert.Equal(t, "c_1234_orderCreated", CompanyTopic("1234", "orderCreated"))
}

// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the local development environment name
	EnvDevelop = "develop"
	// EnvProduction is the production environment name
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes audit events to a local HTTP endpoint
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes audit events to Google Cloud Pub/Sub
	PubSubProviderGoogle = "google"
)

// Firestore collections and fields.
const (
	CollectionStaffPins = "staffPins"
	CollectionCompanies = "companies"
	CollectionUsers     = "users"
	CollectionAudit     = "auditEvents"

	FieldCompanyCode = "companyCode"
	FieldCompanyID   = "companyId"
	FieldPinHash     = "pinHash"
	FieldPin         = "pin"
)

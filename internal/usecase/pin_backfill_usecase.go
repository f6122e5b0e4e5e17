package usecase

import "context"

// BackfillInput carries the shared secret gating a backfill run.
type BackfillInput struct {
	Token string `json:"token"`
}

// BackfillResult reports what a backfill run changed.
type BackfillResult struct {
	UpdatedCount int    `json:"updatedCount"` // Records whose plaintext PIN was hashed.
	CleanedCount int    `json:"cleanedCount"` // Records whose lingering plaintext field was removed.
	Message      string `json:"message"`
}

// PinBackfillUsecase migrates every stored plaintext PIN to its hashed form.
type PinBackfillUsecase interface {
	// BackfillPinHashes runs a full backfill pass after checking the caller's token.
	BackfillPinHashes(ctx context.Context, input *BackfillInput) (*BackfillResult, error)

	// BackfillAll runs a full backfill pass for trusted operator tooling.
	// Running it twice in a row reports zero changes the second time.
	BackfillAll(ctx context.Context) (*BackfillResult, error)
}

// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"

	"github.com/JeffJagr/SmartBar-v3/internal/errors"

	gcfirestore "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClientProvider hands out the process-wide Firestore client, creating it on first use.
type ClientProvider interface {
	Firestore(ctx context.Context) (*gcfirestore.Client, error)
}

// firstDocument runs q and returns its first document, or nil when the query matches nothing.
func firstDocument(ctx context.Context, q gcfirestore.Query) (*gcfirestore.DocumentSnapshot, error) {
	iter := q.Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return doc, nil
}

// forEachDocument streams every document of q to fn.
func forEachDocument(ctx context.Context, q gcfirestore.Query, fn func(doc *gcfirestore.DocumentSnapshot) error) error {
	iter := q.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return errors.WithStack(err)
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"billing_saas/internal/usecase/interfaces"
)

// upsertDocument writes the artifact at key with explicit conflict
// resolution:
//
//  1. attempt the write
//  2. on an immutable-object conflict, delete the existing object and write
//     exactly once more
//  3. every other error class (network, permission, throttling) propagates
//     immediately, without the delete/retry path
//
// A conflict that survives the delete+retry cycle is fatal, not retried
// further: the retry budget is one, otherwise a broken backend turns this
// into an infinite loop.
func upsertDocument(ctx context.Context, store interfaces.IDocumentStore, key string, body []byte, contentType string) error {
	err := store.Put(ctx, key, body, contentType)
	if err == nil {
		return nil
	}
	if !errors.Is(err, interfaces.ErrObjectImmutable) {
		return err
	}

	if delErr := store.Delete(ctx, key); delErr != nil {
		return fmt.Errorf("deleting conflicting object %s: %w", key, delErr)
	}

	if err := store.Put(ctx, key, body, contentType); err != nil {
		if errors.Is(err, interfaces.ErrObjectImmutable) {
			return fmt.Errorf("%w: %s", ErrStorageConflict, key)
		}
		return err
	}
	return nil
}

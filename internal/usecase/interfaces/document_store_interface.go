package interfaces

import (
	"context"
	"errors"
)

// ErrObjectImmutable marks a storage backend refusing to overwrite an
// existing object at the key (object lock, versioning or conditional-write
// policies). It is the only error class the upsert protocol resolves itself;
// transient failures must not be mapped onto it.
var ErrObjectImmutable = errors.New("object already exists and is immutable")

// IDocumentStore abstracts key-addressed durable binary storage with at most
// one live object per key.
type IDocumentStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

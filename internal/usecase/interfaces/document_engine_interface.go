package interfaces

import "context"

// IDocumentEngine converts rendered markup into a paginated, fixed-layout
// binary document with the header and footer repeated on every page.
//
// Implementations own exactly one rendering session per call and must release
// it on every exit path, success or failure. The context bounds the engine's
// content-load and serialization work.
type IDocumentEngine interface {
	RenderDocument(ctx context.Context, bodyHTML, headerHTML, footerHTML string) ([]byte, error)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"billing_saas/internal/usecase/interfaces"
	mock_interfaces "billing_saas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func conflictErr(key string) error {
	return fmt.Errorf("%w: %s", interfaces.ErrObjectImmutable, key)
}

func TestUpsertDocument(t *testing.T) {
	body := []byte("%PDF")
	const key = "invoices/inv-1.pdf"

	t.Run("first put succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)

		store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(nil)

		if err := upsertDocument(context.Background(), store, key, body, "application/pdf"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conflict resolved with exactly one delete and one retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)

		gomock.InOrder(
			store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(conflictErr(key)),
			store.EXPECT().Delete(gomock.Any(), key).Return(nil),
			store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(nil),
		)

		if err := upsertDocument(context.Background(), store, key, body, "application/pdf"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-conflict error propagates without delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)

		transient := errors.New("connection reset")
		store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(transient)

		err := upsertDocument(context.Background(), store, key, body, "application/pdf")
		if !errors.Is(err, transient) {
			t.Fatalf("expected transient error, got %v", err)
		}
	})

	t.Run("delete failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)

		delErr := errors.New("access denied")
		gomock.InOrder(
			store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(conflictErr(key)),
			store.EXPECT().Delete(gomock.Any(), key).Return(delErr),
		)

		err := upsertDocument(context.Background(), store, key, body, "application/pdf")
		if !errors.Is(err, delErr) {
			t.Fatalf("expected delete error, got %v", err)
		}
	})

	t.Run("persistent conflict is fatal after one retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)

		gomock.InOrder(
			store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(conflictErr(key)),
			store.EXPECT().Delete(gomock.Any(), key).Return(nil),
			store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(conflictErr(key)),
		)

		err := upsertDocument(context.Background(), store, key, body, "application/pdf")
		if !errors.Is(err, ErrStorageConflict) {
			t.Fatalf("expected ErrStorageConflict, got %v", err)
		}
	})

	t.Run("retry failure with other error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)

		retryErr := errors.New("timeout")
		gomock.InOrder(
			store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(conflictErr(key)),
			store.EXPECT().Delete(gomock.Any(), key).Return(nil),
			store.EXPECT().Put(gomock.Any(), key, body, "application/pdf").Return(retryErr),
		)

		err := upsertDocument(context.Background(), store, key, body, "application/pdf")
		if !errors.Is(err, retryErr) {
			t.Fatalf("expected retry error, got %v", err)
		}
	})
}

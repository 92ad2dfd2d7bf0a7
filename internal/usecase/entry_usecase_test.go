package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/pedro-h-dias/c3s-project/internal/domain"
	"github.com/pedro-h-dias/c3s-project/internal/usecase"
	"github.com/pedro-h-dias/c3s-project/internal/usecase/mocks"
)

func intPtr(i int) *int { return &i }

// passthroughRetry makes the mock retrier run the operation once.
func passthroughRetry(retrier *mocks.MockRetrier) {
	retrier.EXPECT().Retry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, operation func() error) error {
			return operation()
		},
	).AnyTimes()
}

func TestEntryUseCase_CreateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	retrier := mocks.NewMockRetrier(ctrl)
	passthroughRetry(retrier)

	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	idGen.EXPECT().Generate().Return("entry-1")

	var persisted *domain.Entry
	entryRepo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
			persisted = entry
			return nil
		},
	)
	tx.EXPECT().Commit(gomock.Any()).Return(nil)

	uc := usecase.NewEntryUseCase(txManager, entryRepo, idGen, retrier)

	created, err := uc.CreateEntry(context.Background(), domain.NewEntry{
		Amount:         decimal.NewFromFloat(13.37),
		Day:            25,
		Classification: domain.Revenue,
		Origin:         intPtr(2),
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "entry-1" {
		t.Errorf("expected assigned ID entry-1, got %q", created.ID)
	}
	if persisted != created {
		t.Error("expected the persisted entry to be returned")
	}
}

func TestEntryUseCase_CreateEntry_InvalidDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository, transaction, or ID expectations: an invalid draft
	// must be rejected before any of them are touched.
	uc := usecase.NewEntryUseCase(
		mocks.NewMockTransactionManager(ctrl),
		mocks.NewMockEntryRepository(ctrl),
		mocks.NewMockIDGenerator(ctrl),
		mocks.NewMockRetrier(ctrl),
	)

	_, err := uc.CreateEntry(context.Background(), domain.NewEntry{
		Day:            25,
		Classification: domain.Revenue,
		Origin:         intPtr(2),
		Destination:    intPtr(3),
	})

	if !errors.Is(err, domain.ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
}

func TestEntryUseCase_CreateEntry_RepoErrorRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	retrier := mocks.NewMockRetrier(ctrl)
	passthroughRetry(retrier)

	storageErr := errors.New("constraint violation")

	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	idGen.EXPECT().Generate().Return("entry-1")
	entryRepo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(storageErr)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	uc := usecase.NewEntryUseCase(txManager, entryRepo, idGen, retrier)

	_, err := uc.CreateEntry(context.Background(), domain.NewEntry{
		Amount:         decimal.NewFromInt(10),
		Day:            1,
		Classification: domain.Cost,
		Destination:    intPtr(5),
	})

	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestEntryUseCase_GetEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	filter := domain.EntryFilter{Field: domain.QueryDay, Int: 5}
	entryRepo.EXPECT().GetBy(gomock.Any(), filter).Return([]*domain.Entry{
		{ID: "e1", Day: 5, Classification: domain.Revenue, Origin: intPtr(2)},
	}, nil)

	uc := usecase.NewEntryUseCase(
		mocks.NewMockTransactionManager(ctrl),
		entryRepo,
		mocks.NewMockIDGenerator(ctrl),
		mocks.NewMockRetrier(ctrl),
	)

	entries, err := uc.GetEntries(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
}

func TestEntryUseCase_GetEntries_UnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewEntryUseCase(
		mocks.NewMockTransactionManager(ctrl),
		mocks.NewMockEntryRepository(ctrl),
		mocks.NewMockIDGenerator(ctrl),
		mocks.NewMockRetrier(ctrl),
	)

	_, err := uc.GetEntries(context.Background(), domain.EntryFilter{Field: domain.QueryField("classification")})
	if !errors.Is(err, domain.ErrUnknownQueryField) {
		t.Fatalf("expected ErrUnknownQueryField, got %v", err)
	}
}

func TestEntryUseCase_GetAllEntries_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	entryRepo.EXPECT().GetAll(gomock.Any()).Return(nil, domain.ErrEntryNotFound)

	uc := usecase.NewEntryUseCase(
		mocks.NewMockTransactionManager(ctrl),
		entryRepo,
		mocks.NewMockIDGenerator(ctrl),
		mocks.NewMockRetrier(ctrl),
	)

	_, err := uc.GetAllEntries(context.Background())
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryUseCase_DeleteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	retrier := mocks.NewMockRetrier(ctrl)
	passthroughRetry(retrier)

	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	entryRepo.EXPECT().Delete(gomock.Any(), tx, "entry-1").Return(nil)
	tx.EXPECT().Commit(gomock.Any()).Return(nil)

	uc := usecase.NewEntryUseCase(txManager, entryRepo, mocks.NewMockIDGenerator(ctrl), retrier)

	if err := uc.DeleteEntry(context.Background(), "entry-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEntryUseCase_DeleteEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	retrier := mocks.NewMockRetrier(ctrl)
	passthroughRetry(retrier)

	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	entryRepo.EXPECT().Delete(gomock.Any(), tx, "missing").Return(domain.ErrEntryNotFound)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	uc := usecase.NewEntryUseCase(txManager, entryRepo, mocks.NewMockIDGenerator(ctrl), retrier)

	err := uc.DeleteEntry(context.Background(), "missing")
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

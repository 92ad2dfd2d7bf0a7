package usecase

import (
	"context"

	"github.com/pedro-h-dias/c3s-project/internal/domain"
)

// EntryUseCase handles ledger entry business logic.
type EntryUseCase struct {
	txManager TransactionManager
	entryRepo EntryRepository
	idGen     IDGenerator
	retrier   Retrier
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(txManager TransactionManager, entryRepo EntryRepository, idGen IDGenerator, retrier Retrier) *EntryUseCase {
	return &EntryUseCase{
		txManager: txManager,
		entryRepo: entryRepo,
		idGen:     idGen,
		retrier:   retrier,
	}
}

// CreateEntry validates the draft and persists it inside a transaction.
// An invalid draft never reaches the repository. Returns the persisted
// entry with its assigned ID.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Entry

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}

		entry := draft.Entry(uc.idGen.Generate())

		if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		created = entry

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetEntries fetches the entries matching the filter.
func (uc *EntryUseCase) GetEntries(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	if !filter.Field.Valid() {
		return nil, domain.ErrUnknownQueryField
	}

	return uc.entryRepo.GetBy(ctx, filter)
}

// GetAllEntries fetches every entry.
func (uc *EntryUseCase) GetAllEntries(ctx context.Context) ([]*domain.Entry, error) {
	return uc.entryRepo.GetAll(ctx)
}

// DeleteEntry removes the entry with the given ID inside a transaction.
// Returns domain.ErrEntryNotFound if no such entry exists.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	return uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}

		if err := uc.entryRepo.Delete(ctx, tx, id); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}

		return tx.Commit(ctx)
	})
}

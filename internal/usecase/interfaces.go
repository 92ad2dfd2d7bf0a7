package usecase

import (
	"context"
	"time"

	"github.com/pedro-h-dias/c3s-project/internal/domain"
)

// EntryRepository defines data access for ledger entries. Write
// operations run on a caller-supplied transaction and never commit;
// fetches return domain.ErrEntryNotFound when zero rows match.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	GetBy(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error)
	GetAll(ctx context.Context) ([]*domain.Entry, error)
	Delete(ctx context.Context, tx Transaction, id string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle. The use case layer
// owns begin/commit/rollback; repositories only execute on the handle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique entry IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation when it fails with a transient storage
// error.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

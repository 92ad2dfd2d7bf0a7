package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pedro-h-dias/c3s-project/internal/domain"
	"github.com/pedro-h-dias/c3s-project/internal/usecase"
)

const (
	// Exactly one counterpart column is ever written: the origin set for
	// entries arriving from an account, the destination set otherwise.
	insertEntryWithOrigin      = `INSERT INTO entries (id, amount, day, classification, origin) VALUES ($1, $2, $3, $4, $5)`
	insertEntryWithDestination = `INSERT INTO entries (id, amount, day, classification, destination) VALUES ($1, $2, $3, $4, $5)`

	selectEntryColumns = `SELECT id, amount, day, classification, origin, destination FROM entries`

	deleteEntryByID = `DELETE FROM entries WHERE id = $1`
)

type dbQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	db dbQuerier
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return newEntryRepositoryWithDB(pool)
}

func newEntryRepositoryWithDB(db dbQuerier) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create inserts the entry on the caller-supplied transaction. It never
// commits; the caller owns the transaction boundary. The validity
// invariant is re-checked here so invalid data cannot reach storage even
// if a caller skipped Validate.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	pgxTx := tx.(*Tx).PgxTx()

	var err error
	if entry.Origin != nil {
		_, err = pgxTx.Exec(ctx, insertEntryWithOrigin,
			entry.ID,
			decimalToNumeric(entry.Amount),
			entry.Day,
			classificationToEnum(entry.Classification),
			*entry.Origin,
		)
	} else {
		_, err = pgxTx.Exec(ctx, insertEntryWithDestination,
			entry.ID,
			decimalToNumeric(entry.Amount),
			entry.Day,
			classificationToEnum(entry.Classification),
			*entry.Destination,
		)
	}
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	return nil
}

// GetBy retrieves the entries whose field equals the filter value.
// Returns domain.ErrEntryNotFound when zero rows match.
func (r *EntryRepository) GetBy(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	if !filter.Field.Valid() {
		return nil, domain.ErrUnknownQueryField
	}

	// Field comes from a closed enum, so the column name is safe to
	// interpolate.
	query := fmt.Sprintf("%s WHERE %s = $1 ORDER BY day, id", selectEntryColumns, filter.Field.Column())

	var arg any = filter.Int
	if filter.Field.Decimal() {
		arg = decimalToNumeric(filter.Amount)
	}

	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query entries by %s: %w", filter.Field, err)
	}

	return collectEntries(rows)
}

// GetAll retrieves every entry. Returns domain.ErrEntryNotFound when the
// ledger is empty.
func (r *EntryRepository) GetAll(ctx context.Context) ([]*domain.Entry, error) {
	rows, err := r.db.Query(ctx, selectEntryColumns+" ORDER BY day, id")
	if err != nil {
		return nil, fmt.Errorf("query all entries: %w", err)
	}

	return collectEntries(rows)
}

// Delete removes the entry with the given ID on the caller-supplied
// transaction. Returns domain.ErrEntryNotFound when no row was affected.
func (r *EntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, deleteEntryByID, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func collectEntries(rows pgx.Rows) ([]*domain.Entry, error) {
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		var (
			entry       domain.Entry
			amount      pgtype.Numeric
			class       string
			origin      pgtype.Int4
			destination pgtype.Int4
		)

		if err := rows.Scan(&entry.ID, &amount, &entry.Day, &class, &origin, &destination); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		classification, err := domain.ParseClassification(class)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		entry.Amount = numericToDecimal(amount)
		entry.Classification = classification
		entry.Origin = int4ToIntPtr(origin)
		entry.Destination = int4ToIntPtr(destination)

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	if len(entries) == 0 {
		return nil, domain.ErrEntryNotFound
	}

	return entries, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func classificationToEnum(c domain.Classification) string {
	return strings.ToLower(string(c))
}

func int4ToIntPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}

	i := int(v.Int32)

	return &i
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pedro-h-dias/c3s-project/internal/adapter/http/dto"
	"github.com/pedro-h-dias/c3s-project/internal/domain"
	"github.com/pedro-h-dias/c3s-project/internal/infrastructure/metrics"
)

// EntryService defines the behavior needed by EntryHandler.
type EntryService interface {
	CreateEntry(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error)
	GetEntries(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error)
	GetAllEntries(ctx context.Context) ([]*domain.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// EntryHandler handles entry-related HTTP requests.
type EntryHandler struct {
	entryUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC EntryService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// Create creates a new ledger entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.entryUC.CreateEntry(r.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEntry) {
			metrics.EntryValidationFailures.Inc()
		}
		status := mapDomainError(err)
		writeError(w, status, "failed to create entry", err.Error())

		return
	}

	metrics.EntriesCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// List lists entries, optionally filtered by a single field via the
// "by" and "value" query parameters.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	by := r.URL.Query().Get("by")
	if by == "" {
		entries, err := h.entryUC.GetAllEntries(r.Context())
		if err != nil {
			status := mapDomainError(err)
			writeError(w, status, "failed to list entries", err.Error())

			return
		}

		writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
		return
	}

	filter, err := buildFilter(by, r.URL.Query().Get("value"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	entries, err := h.entryUC.GetEntries(r.Context(), filter)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// Delete removes an entry by ID.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.entryUC.DeleteEntry(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete entry", err.Error())

		return
	}

	metrics.EntriesDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// buildFilter parses the "by"/"value" query parameters into a filter.
func buildFilter(by, value string) (domain.EntryFilter, error) {
	field, err := domain.ParseQueryField(by)
	if err != nil {
		return domain.EntryFilter{}, err
	}

	filter := domain.EntryFilter{Field: field}
	if field.Decimal() {
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return domain.EntryFilter{}, errors.New("value must be a decimal number")
		}
		filter.Amount = amount

		return filter, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return domain.EntryFilter{}, errors.New("value must be an integer")
	}
	filter.Int = i

	return filter, nil
}

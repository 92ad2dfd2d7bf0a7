package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pedro-h-dias/c3s-project/internal/adapter/http/dto"
	"github.com/pedro-h-dias/c3s-project/internal/domain"
)

type entryServiceStub struct {
	createFn func(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error)
	getFn    func(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error)
	getAllFn func(ctx context.Context) ([]*domain.Entry, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *entryServiceStub) CreateEntry(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error) {
	return s.createFn(ctx, draft)
}

func (s *entryServiceStub) GetEntries(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	return s.getFn(ctx, filter)
}

func (s *entryServiceStub) GetAllEntries(ctx context.Context) ([]*domain.Entry, error) {
	return s.getAllFn(ctx)
}

func (s *entryServiceStub) DeleteEntry(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestEntryHandler_Create_Success(t *testing.T) {
	origin := 3
	entry := &domain.Entry{
		ID:             "entry-1",
		Amount:         decimal.RequireFromString("150.75"),
		Day:            12,
		Classification: domain.Revenue,
		Origin:         &origin,
	}

	var captured domain.NewEntry
	handler := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error) {
			captured = draft
			return entry, nil
		},
	})

	body, _ := json.Marshal(dto.CreateEntryRequest{
		Amount: decimal.RequireFromString("150.75"),
		Day:    12,
		Class:  domain.Revenue,
		Origin: &origin,
	})

	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Day != 12 || captured.Classification != domain.Revenue {
		t.Fatalf("expected draft to match request, got %+v", captured)
	}
	if captured.Origin == nil || *captured.Origin != 3 {
		t.Fatalf("expected origin 3, got %v", captured.Origin)
	}

	var resp dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "entry-1" {
		t.Fatalf("expected entry ID entry-1, got %s", resp.ID)
	}
}

func TestEntryHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error) {
			t.Fatal("CreateEntry should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_Create_UnknownClassification(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error) {
			t.Fatal("CreateEntry should not be called for unknown classification")
			return nil, nil
		},
	})

	body := `{"amount":"10.00","day":5,"class":"Bonus","origin":1}`
	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_Create_ValidationError(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error) {
			return nil, domain.ErrMissingCounterpart
		},
	})

	body := `{"amount":"10.00","day":5,"class":"Revenue"}`
	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_Create_ServiceError(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, draft domain.NewEntry) (*domain.Entry, error) {
			return nil, errors.New("db error")
		},
	})

	body := `{"amount":"10.00","day":5,"class":"Revenue","origin":1}`
	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestEntryHandler_List_All(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		getAllFn: func(ctx context.Context) ([]*domain.Entry, error) {
			return []*domain.Entry{{ID: "entry-1"}, {ID: "entry-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}
}

func TestEntryHandler_List_FilterByDay(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		getFn: func(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
			if filter.Field != domain.QueryDay || filter.Int != 7 {
				t.Fatalf("expected day=7 filter, got %+v", filter)
			}
			return []*domain.Entry{{ID: "entry-1", Day: 7}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/entries?by=day&value=7", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEntryHandler_List_FilterByAmount(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		getFn: func(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
			if filter.Field != domain.QueryAmount {
				t.Fatalf("expected amount filter, got %+v", filter)
			}
			if !filter.Amount.Equal(decimal.RequireFromString("99.90")) {
				t.Fatalf("expected amount 99.90, got %s", filter.Amount)
			}
			return []*domain.Entry{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/entries?by=amount&value=99.90", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEntryHandler_List_UnknownField(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		getFn: func(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
			t.Fatal("GetEntries should not be called for unknown field")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/entries?by=classification&value=Revenue", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_List_BadValue(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		getFn: func(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
			t.Fatal("GetEntries should not be called for a non-integer value")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/entries?by=day&value=abc", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_Delete_Success(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "entry-1" {
				t.Fatalf("expected id entry-1, got %s", id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/entries/entry-1", nil)
	req = setChiURLParam(req, "id", "entry-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestEntryHandler_Delete_NotFound(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrEntryNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/entries/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

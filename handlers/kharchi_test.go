package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/store"
)

func useTestStore(t *testing.T) {
	t.Helper()
	prev := config.App
	config.App = store.Load(store.NewMemPersister())
	t.Cleanup(func() { config.App = prev })
}

func TestGetKharchiSundays(t *testing.T) {
	useTestStore(t)

	req := httptest.NewRequest(http.MethodGet, "/kharchi/sundays?month=2024-02", nil)
	rec := httptest.NewRecorder()
	GetKharchiSundays(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var body struct {
		Month   string   `json:"month"`
		Sundays []string `json:"sundays"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	expected := []string{"2024-02-04", "2024-02-11", "2024-02-18", "2024-02-25"}
	if len(body.Sundays) != len(expected) {
		t.Fatalf("got %d sundays, expected %d", len(body.Sundays), len(expected))
	}
	for i, day := range expected {
		if body.Sundays[i] != day {
			t.Errorf("sunday[%d] = %q, expected %q", i, body.Sundays[i], day)
		}
	}
}

func TestGetKharchiSundaysRejectsBadMonth(t *testing.T) {
	useTestStore(t)

	for _, month := range []string{"", "Feb-2024"} {
		req := httptest.NewRequest(http.MethodGet, "/kharchi/sundays?month="+month, nil)
		rec := httptest.NewRecorder()
		GetKharchiSundays(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("month %q: status = %d, expected 400", month, rec.Code)
		}
	}
}

func TestSaveKharchiRejectsNonSunday(t *testing.T) {
	useTestStore(t)

	// 2024-02-05 is a Monday.
	payload := `[{"workerId": "w1", "projectId": "p1", "date": "2024-02-05", "amount": 500}]`
	req := httptest.NewRequest(http.MethodPost, "/kharchi", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	SaveKharchi(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", rec.Code)
	}
	if len(config.App.KharchiEntries()) != 0 {
		t.Error("a rejected batch must not be applied")
	}
}

func TestSaveKharchiUpsertsByWorkerDay(t *testing.T) {
	useTestStore(t)

	payload := `[{"workerId": "w1", "projectId": "p1", "date": "2024-02-04", "amount": 500}]`
	for _, amount := range []string{"500", "650"} {
		body := strings.Replace(payload, "500", amount, 1)
		req := httptest.NewRequest(http.MethodPost, "/kharchi", strings.NewReader(body))
		rec := httptest.NewRecorder()
		SaveKharchi(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", rec.Code)
		}
	}

	entries := config.App.KharchiEntries()
	if len(entries) != 1 {
		t.Fatalf("re-saving the same worker-day must not duplicate: got %d", len(entries))
	}
	if entries[0].Amount != 650 {
		t.Errorf("amount = %v, expected the re-save to win with 650", entries[0].Amount)
	}
	if entries[0].ID != "w1-2024-02-04" {
		t.Errorf("entry ID = %q, expected the derived worker-day key", entries[0].ID)
	}
}

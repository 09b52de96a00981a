package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/itousif38-netizen/SN-ENTP/models"
)

func TestBackupRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddProject(models.Project{ID: "p5", Name: "Canal Widening", Budget: 100000})
	s.UpsertKharchi([]models.KharchiEntry{{
		ID: models.KharchiID("w1", "2024-03-03"), WorkerID: "w1", Date: "2024-03-03", Amount: 500,
	}})

	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	fresh := Load(NewMemPersister())
	doc, err := ParseRestore(data)
	if err != nil {
		t.Fatalf("parse backup: %v", err)
	}
	fresh.Restore(doc)

	if len(fresh.Projects()) != len(s.Projects()) {
		t.Errorf("restored %d projects, expected %d", len(fresh.Projects()), len(s.Projects()))
	}
	entries := fresh.KharchiEntries()
	if len(entries) != 1 || entries[0].Amount != 500 {
		t.Errorf("kharchi did not survive the round trip: %+v", entries)
	}
}

func TestParseRestoreRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{broken"},
		{"missing projects", `{"workers": []}`},
		{"projects wrong type", `{"projects": "oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRestore([]byte(tt.data)); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}

	_, err := ParseRestore([]byte(`{"workers": []}`))
	if !errors.Is(err, ErrInvalidBackup) {
		t.Errorf("missing projects should report ErrInvalidBackup, got %v", err)
	}
}

func TestRejectedRestoreLeavesStoreUntouched(t *testing.T) {
	s, _ := newTestStore(t)
	before := len(s.Projects())

	if _, err := ParseRestore([]byte(`{"projects": 42}`)); err == nil {
		t.Fatal("expected parse failure")
	}

	if len(s.Projects()) != before {
		t.Errorf("a rejected document must not change the store: %d -> %d", before, len(s.Projects()))
	}
}

func TestRestoreLeavesAbsentCollectionsAlone(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddAdvance(models.AdvanceEntry{ID: "a1", WorkerID: "w1", Amount: 800})

	doc, err := ParseRestore([]byte(`{"projects": [], "workers": []}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s.Restore(doc)

	if len(s.Projects()) != 0 {
		t.Errorf("present empty array should clear projects, got %d", len(s.Projects()))
	}
	if len(s.Advances()) != 1 {
		t.Errorf("absent collection must survive a restore, got %d advances", len(s.Advances()))
	}
}

package store

import (
	"testing"

	"github.com/itousif38-netizen/SN-ENTP/models"
)

func newTestStore(t *testing.T) (*Store, *MemPersister) {
	t.Helper()
	p := NewMemPersister()
	return Load(p), p
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	projects := s.Projects()
	if len(projects) != 2 {
		t.Fatalf("expected 2 default projects, got %d", len(projects))
	}
	if projects[0].Name != "Riverside Heights" {
		t.Errorf("expected default project Riverside Heights, got %q", projects[0].Name)
	}
}

func TestLoadIgnoresCorruptCollection(t *testing.T) {
	p := NewMemPersister()
	p.Seed(KeyProjects, []byte("{not json"))
	p.Save(KeyWorkers, []models.Worker{{ID: "w1", Name: "Gopal"}})

	s := Load(p)

	if len(s.Projects()) != 2 {
		t.Errorf("corrupt projects payload should fall back to %d defaults, got %d", 2, len(s.Projects()))
	}
	workers := s.Workers()
	if len(workers) != 1 || workers[0].Name != "Gopal" {
		t.Errorf("healthy workers payload should load as-is, got %+v", workers)
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	s, p := newTestStore(t)

	s.AddProject(models.Project{ID: "p9", Name: "Metro Depot", Budget: 100})

	// A second store loaded from the same persister must see the write.
	reborn := Load(p)
	found := false
	for _, pr := range reborn.Projects() {
		if pr.ID == "p9" {
			found = true
		}
	}
	if !found {
		t.Error("AddProject was not persisted through to the store backend")
	}
}

func TestEditAndDeleteByID(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddAdvance(models.AdvanceEntry{ID: "a1", WorkerID: "w1", Amount: 500})
	s.AddAdvance(models.AdvanceEntry{ID: "a2", WorkerID: "w2", Amount: 900})

	s.EditAdvance(models.AdvanceEntry{ID: "a2", WorkerID: "w2", Amount: 1200})
	s.DeleteAdvance("a1")

	advances := s.Advances()
	if len(advances) != 1 {
		t.Fatalf("expected 1 advance after delete, got %d", len(advances))
	}
	if advances[0].ID != "a2" || advances[0].Amount != 1200 {
		t.Errorf("edit did not replace the record: %+v", advances[0])
	}
}

func TestEditUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	before := len(s.Bills())

	s.EditBill(models.Bill{ID: "missing", Amount: 1})
	s.DeleteBill("missing")

	bills := s.Bills()
	if len(bills) != before {
		t.Errorf("editing an unknown id must not change size: %d -> %d", before, len(bills))
	}
	for _, b := range bills {
		if b.ID == "missing" {
			t.Error("editing an unknown id must not insert the record")
		}
	}
}

func TestUpsertKharchiIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	entry := models.KharchiEntry{
		ID:       models.KharchiID("w1", "2024-02-04"),
		WorkerID: "w1",
		Date:     "2024-02-04",
		Amount:   500,
	}

	s.UpsertKharchi([]models.KharchiEntry{entry})
	entry.Amount = 650
	s.UpsertKharchi([]models.KharchiEntry{entry})

	entries := s.KharchiEntries()
	if len(entries) != 1 {
		t.Fatalf("re-upserting the same worker-day must not duplicate: got %d entries", len(entries))
	}
	if entries[0].Amount != 650 {
		t.Errorf("second upsert should win, got amount %v", entries[0].Amount)
	}
}

func TestUpsertAttendanceReplacesByWorkerDay(t *testing.T) {
	s, _ := newTestStore(t)

	s.UpsertAttendance([]models.AttendanceRecord{
		{ID: "r1", WorkerID: "w1", Date: "2024-03-01", Status: models.AttendancePresent},
		{ID: "r2", WorkerID: "w2", Date: "2024-03-01", Status: models.AttendanceAbsent},
	})
	s.UpsertAttendance([]models.AttendanceRecord{
		{ID: "r3", WorkerID: "w1", Date: "2024-03-01", Status: models.AttendanceHalfDay},
	})

	records := s.Attendance()
	if len(records) != 2 {
		t.Fatalf("expected 2 attendance records, got %d", len(records))
	}
	byWorker := map[string]string{}
	for _, r := range records {
		byWorker[r.WorkerID] = r.Status
	}
	if byWorker["w1"] != models.AttendanceHalfDay {
		t.Errorf("re-marking w1 should replace the record, got status %q", byWorker["w1"])
	}
	if byWorker["w2"] != models.AttendanceAbsent {
		t.Errorf("untouched worker record must survive, got status %q", byWorker["w2"])
	}
}

func TestSaveWorkerPaymentsReplacesMonth(t *testing.T) {
	s, _ := newTestStore(t)

	first := []models.WorkerPayment{
		{ID: models.PaymentID("w1", "2024-03"), WorkerID: "w1", Month: "2024-03", NetPayable: 7000},
		{ID: models.PaymentID("w2", "2024-03"), WorkerID: "w2", Month: "2024-03", NetPayable: 6500},
	}
	s.SaveWorkerPayments(first)

	second := []models.WorkerPayment{
		{ID: models.PaymentID("w1", "2024-03"), WorkerID: "w1", Month: "2024-03", NetPayable: 7100},
	}
	s.SaveWorkerPayments(second)

	payments := s.WorkerPayments()
	if len(payments) != 2 {
		t.Fatalf("expected 2 payment records, got %d", len(payments))
	}
	for _, p := range payments {
		if p.WorkerID == "w1" && p.NetPayable != 7100 {
			t.Errorf("re-settling w1 should replace the row, got %v", p.NetPayable)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestStore(t)

	projects := s.Projects()
	projects[0].Name = "mutated"

	if s.Projects()[0].Name == "mutated" {
		t.Error("reads must return copies; caller mutation leaked into the store")
	}
}

func TestMarkSynced(t *testing.T) {
	s, p := newTestStore(t)

	if s.LastSynced() != "" {
		t.Errorf("fresh store should have no sync stamp, got %q", s.LastSynced())
	}

	stamp := s.MarkSynced()
	if stamp == "" || s.LastSynced() != stamp {
		t.Errorf("MarkSynced should set and return the stamp, got %q / %q", stamp, s.LastSynced())
	}

	var persisted string
	if err := p.Load(KeyLastSync, &persisted); err != nil || persisted != stamp {
		t.Errorf("sync stamp not persisted: %q, err %v", persisted, err)
	}
}

package store

import (
	"encoding/json"
	"errors"

	"github.com/itousif38-netizen/SN-ENTP/models"
)

// Snapshot returns a copy of every collection, shaped as the backup document
// (top-level key per collection).
func (s *Store) Snapshot() Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Collections{
		Projects:       snapshot(s.c.Projects),
		Workers:        snapshot(s.c.Workers),
		Bills:          snapshot(s.c.Bills),
		ClientPayments: snapshot(s.c.ClientPayments),
		Kharchi:        snapshot(s.c.Kharchi),
		Advances:       snapshot(s.c.Advances),
		Purchases:      snapshot(s.c.Purchases),
		Execution:      snapshot(s.c.Execution),
		MessEntries:    snapshot(s.c.MessEntries),
		WorkerPayments: snapshot(s.c.WorkerPayments),
		Attendance:     snapshot(s.c.Attendance),
		Consumption:    snapshot(s.c.Consumption),
	}
}

// RestoreDocument is the backup file schema. Every collection is
// independently optional: nil means "absent, leave the current data alone",
// while an empty array means "replace with nothing".
type RestoreDocument struct {
	Projects       *[]models.Project          `json:"projects"`
	Workers        *[]models.Worker           `json:"workers"`
	Bills          *[]models.Bill             `json:"bills"`
	ClientPayments *[]models.ClientPayment    `json:"clientPayments"`
	Kharchi        *[]models.KharchiEntry     `json:"kharchi"`
	Advances       *[]models.AdvanceEntry     `json:"advances"`
	Purchases      *[]models.PurchaseEntry    `json:"purchases"`
	Execution      *[]models.ExecutionLevel   `json:"executionData"`
	MessEntries    *[]models.MessEntry        `json:"messEntries"`
	WorkerPayments *[]models.WorkerPayment    `json:"workerPayments"`
	Attendance     *[]models.AttendanceRecord `json:"attendance"`
	Consumption    *[]models.StockConsumption `json:"consumption"`
}

var ErrInvalidBackup = errors.New("invalid backup document: missing projects array")

// ParseRestore decodes and validates a backup document. A document without a
// projects array is rejected outright; nothing is applied on failure.
func ParseRestore(data []byte) (*RestoreDocument, error) {
	var doc RestoreDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Projects == nil {
		return nil, ErrInvalidBackup
	}
	return &doc, nil
}

// Restore replaces each collection present in the document wholesale and
// persists it. Absent collections are left untouched, not cleared.
func (s *Store) Restore(doc *RestoreDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Projects != nil {
		s.c.Projects = snapshot(*doc.Projects)
		s.persist(KeyProjects, s.c.Projects)
	}
	if doc.Workers != nil {
		s.c.Workers = snapshot(*doc.Workers)
		s.persist(KeyWorkers, s.c.Workers)
	}
	if doc.Bills != nil {
		s.c.Bills = snapshot(*doc.Bills)
		s.persist(KeyBills, s.c.Bills)
	}
	if doc.ClientPayments != nil {
		s.c.ClientPayments = snapshot(*doc.ClientPayments)
		s.persist(KeyClientPayments, s.c.ClientPayments)
	}
	if doc.Kharchi != nil {
		s.c.Kharchi = snapshot(*doc.Kharchi)
		s.persist(KeyKharchi, s.c.Kharchi)
	}
	if doc.Advances != nil {
		s.c.Advances = snapshot(*doc.Advances)
		s.persist(KeyAdvances, s.c.Advances)
	}
	if doc.Purchases != nil {
		s.c.Purchases = snapshot(*doc.Purchases)
		s.persist(KeyPurchases, s.c.Purchases)
	}
	if doc.Execution != nil {
		s.c.Execution = snapshot(*doc.Execution)
		s.persist(KeyExecution, s.c.Execution)
	}
	if doc.MessEntries != nil {
		s.c.MessEntries = snapshot(*doc.MessEntries)
		s.persist(KeyMess, s.c.MessEntries)
	}
	if doc.WorkerPayments != nil {
		s.c.WorkerPayments = snapshot(*doc.WorkerPayments)
		s.persist(KeyWorkerPayments, s.c.WorkerPayments)
	}
	if doc.Attendance != nil {
		s.c.Attendance = snapshot(*doc.Attendance)
		s.persist(KeyAttendance, s.c.Attendance)
	}
	if doc.Consumption != nil {
		s.c.Consumption = snapshot(*doc.Consumption)
		s.persist(KeyConsumption, s.c.Consumption)
	}
}

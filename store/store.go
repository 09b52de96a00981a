// Package store owns every record collection in memory and is the single
// source of truth for application state. All mutations go through its narrow
// API; each successful mutation writes the affected collection through to the
// configured Persister. Persistence failures are logged and never surfaced:
// the in-memory state stays authoritative for the session.
package store

import (
	"log"
	"sync"
	"time"

	"github.com/itousif38-netizen/SN-ENTP/models"
)

// Storage keys, one per collection. These match the keys the data has always
// been kept under, so existing backups restore cleanly.
const (
	KeyProjects       = "sn_projects"
	KeyWorkers        = "sn_workers"
	KeyBills          = "sn_bills"
	KeyClientPayments = "sn_client_payments"
	KeyKharchi        = "sn_kharchi"
	KeyAdvances       = "sn_advances"
	KeyPurchases      = "sn_purchases"
	KeyExecution      = "sn_execution"
	KeyMess           = "sn_mess"
	KeyWorkerPayments = "sn_worker_payments"
	KeyAttendance     = "sn_attendance"
	KeyConsumption    = "sn_consumption"
	KeyLastSync       = "sn_last_sync"
)

// Collections is the full entity state, one ordered list per collection.
// JSON tags double as the top-level keys of the backup document.
type Collections struct {
	Projects       []models.Project          `json:"projects"`
	Workers        []models.Worker           `json:"workers"`
	Bills          []models.Bill             `json:"bills"`
	ClientPayments []models.ClientPayment    `json:"clientPayments"`
	Kharchi        []models.KharchiEntry     `json:"kharchi"`
	Advances       []models.AdvanceEntry     `json:"advances"`
	Purchases      []models.PurchaseEntry    `json:"purchases"`
	Execution      []models.ExecutionLevel   `json:"executionData"`
	MessEntries    []models.MessEntry        `json:"messEntries"`
	WorkerPayments []models.WorkerPayment    `json:"workerPayments"`
	Attendance     []models.AttendanceRecord `json:"attendance"`
	Consumption    []models.StockConsumption `json:"consumption"`
}

// Store holds the collections behind a mutex so HTTP handlers can share it.
type Store struct {
	mu       sync.RWMutex
	p        Persister
	c        Collections
	lastSync string
}

// Load rehydrates every collection from the persister, falling back to the
// seed dataset for keys that are missing or fail to decode.
func Load(p Persister) *Store {
	def := Defaults()
	s := &Store{p: p}
	s.c.Projects = loadCollection(p, KeyProjects, def.Projects)
	s.c.Workers = loadCollection(p, KeyWorkers, def.Workers)
	s.c.Bills = loadCollection(p, KeyBills, def.Bills)
	s.c.ClientPayments = loadCollection(p, KeyClientPayments, def.ClientPayments)
	s.c.Kharchi = loadCollection(p, KeyKharchi, def.Kharchi)
	s.c.Advances = loadCollection(p, KeyAdvances, def.Advances)
	s.c.Purchases = loadCollection(p, KeyPurchases, def.Purchases)
	s.c.Execution = loadCollection(p, KeyExecution, def.Execution)
	s.c.MessEntries = loadCollection(p, KeyMess, def.MessEntries)
	s.c.WorkerPayments = loadCollection(p, KeyWorkerPayments, def.WorkerPayments)
	s.c.Attendance = loadCollection(p, KeyAttendance, def.Attendance)
	s.c.Consumption = loadCollection(p, KeyConsumption, def.Consumption)

	var last string
	if err := p.Load(KeyLastSync, &last); err == nil {
		s.lastSync = last
	}
	return s
}

// loadCollection reads and decodes one collection, returning the default on
// any read or decode failure. It never fails upward.
func loadCollection[T any](p Persister, key string, def []T) []T {
	var out []T
	if err := p.Load(key, &out); err != nil {
		log.Printf("❌ Failed to load %q, using defaults: %v", key, err)
		return def
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// persist writes one collection through. Failures are logged only; the
// in-memory change stands regardless.
func (s *Store) persist(key string, value interface{}) {
	if err := s.p.Save(key, value); err != nil {
		log.Printf("❌ Failed to persist %q: %v", key, err)
	}
}

// replaceByID swaps the record whose id matches; no-op when the id is absent.
func replaceByID[T any](list []T, id func(T) string, rec T, recID string) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if id(out[i]) == recID {
			out[i] = rec
			break
		}
	}
	return out
}

// removeByID filters out the record with the given id; no-op when absent.
func removeByID[T any](list []T, id func(T) string, recID string) []T {
	out := make([]T, 0, len(list))
	for _, r := range list {
		if id(r) != recID {
			out = append(out, r)
		}
	}
	return out
}

// upsertByKey removes existing records sharing a key with any incoming
// record, then appends all incoming records. Last write wins wholesale; no
// field-level merge.
func upsertByKey[T any](list []T, key func(T) string, incoming []T) []T {
	keys := make(map[string]struct{}, len(incoming))
	for _, r := range incoming {
		keys[key(r)] = struct{}{}
	}
	out := make([]T, 0, len(list)+len(incoming))
	for _, r := range list {
		if _, clash := keys[key(r)]; !clash {
			out = append(out, r)
		}
	}
	return append(out, incoming...)
}

func snapshot[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}

// ---- Projects ----

func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Projects)
}

func (s *Store) AddProject(p models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Projects = append(snapshot(s.c.Projects), p)
	s.persist(KeyProjects, s.c.Projects)
}

func (s *Store) EditProject(p models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Projects = replaceByID(s.c.Projects, func(v models.Project) string { return v.ID }, p, p.ID)
	s.persist(KeyProjects, s.c.Projects)
}

func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Projects = removeByID(s.c.Projects, func(v models.Project) string { return v.ID }, id)
	s.persist(KeyProjects, s.c.Projects)
}

// ---- Workers ----

func (s *Store) Workers() []models.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Workers)
}

func (s *Store) AddWorker(w models.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Workers = append(snapshot(s.c.Workers), w)
	s.persist(KeyWorkers, s.c.Workers)
}

func (s *Store) EditWorker(w models.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Workers = replaceByID(s.c.Workers, func(v models.Worker) string { return v.ID }, w, w.ID)
	s.persist(KeyWorkers, s.c.Workers)
}

func (s *Store) DeleteWorker(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Workers = removeByID(s.c.Workers, func(v models.Worker) string { return v.ID }, id)
	s.persist(KeyWorkers, s.c.Workers)
}

// ---- Bills ----

func (s *Store) Bills() []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Bills)
}

func (s *Store) AddBill(b models.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Bills = append(snapshot(s.c.Bills), b)
	s.persist(KeyBills, s.c.Bills)
}

func (s *Store) EditBill(b models.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Bills = replaceByID(s.c.Bills, func(v models.Bill) string { return v.ID }, b, b.ID)
	s.persist(KeyBills, s.c.Bills)
}

func (s *Store) DeleteBill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Bills = removeByID(s.c.Bills, func(v models.Bill) string { return v.ID }, id)
	s.persist(KeyBills, s.c.Bills)
}

// ---- Client payments ----

func (s *Store) ClientPayments() []models.ClientPayment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.ClientPayments)
}

func (s *Store) AddClientPayment(p models.ClientPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.ClientPayments = append(snapshot(s.c.ClientPayments), p)
	s.persist(KeyClientPayments, s.c.ClientPayments)
}

func (s *Store) EditClientPayment(p models.ClientPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.ClientPayments = replaceByID(s.c.ClientPayments, func(v models.ClientPayment) string { return v.ID }, p, p.ID)
	s.persist(KeyClientPayments, s.c.ClientPayments)
}

func (s *Store) DeleteClientPayment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.ClientPayments = removeByID(s.c.ClientPayments, func(v models.ClientPayment) string { return v.ID }, id)
	s.persist(KeyClientPayments, s.c.ClientPayments)
}

// ---- Kharchi ----

func (s *Store) KharchiEntries() []models.KharchiEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Kharchi)
}

// UpsertKharchi applies a batch of worker-day entries keyed by
// (workerId, date). Existing entries for those keys are replaced whole.
func (s *Store) UpsertKharchi(entries []models.KharchiEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Kharchi = upsertByKey(s.c.Kharchi, func(k models.KharchiEntry) string {
		return models.KharchiID(k.WorkerID, k.Date)
	}, entries)
	s.persist(KeyKharchi, s.c.Kharchi)
}

func (s *Store) DeleteKharchi(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Kharchi = removeByID(s.c.Kharchi, func(v models.KharchiEntry) string { return v.ID }, id)
	s.persist(KeyKharchi, s.c.Kharchi)
}

// ---- Advances ----

func (s *Store) Advances() []models.AdvanceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Advances)
}

func (s *Store) AddAdvance(a models.AdvanceEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Advances = append(snapshot(s.c.Advances), a)
	s.persist(KeyAdvances, s.c.Advances)
}

func (s *Store) EditAdvance(a models.AdvanceEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Advances = replaceByID(s.c.Advances, func(v models.AdvanceEntry) string { return v.ID }, a, a.ID)
	s.persist(KeyAdvances, s.c.Advances)
}

func (s *Store) DeleteAdvance(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Advances = removeByID(s.c.Advances, func(v models.AdvanceEntry) string { return v.ID }, id)
	s.persist(KeyAdvances, s.c.Advances)
}

// ---- Purchases ----

func (s *Store) Purchases() []models.PurchaseEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Purchases)
}

func (s *Store) AddPurchase(p models.PurchaseEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Purchases = append(snapshot(s.c.Purchases), p)
	s.persist(KeyPurchases, s.c.Purchases)
}

func (s *Store) EditPurchase(p models.PurchaseEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Purchases = replaceByID(s.c.Purchases, func(v models.PurchaseEntry) string { return v.ID }, p, p.ID)
	s.persist(KeyPurchases, s.c.Purchases)
}

func (s *Store) DeletePurchase(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Purchases = removeByID(s.c.Purchases, func(v models.PurchaseEntry) string { return v.ID }, id)
	s.persist(KeyPurchases, s.c.Purchases)
}

// ---- Execution levels ----

func (s *Store) ExecutionLevels() []models.ExecutionLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Execution)
}

func (s *Store) AddExecutionLevel(e models.ExecutionLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Execution = append(snapshot(s.c.Execution), e)
	s.persist(KeyExecution, s.c.Execution)
}

func (s *Store) EditExecutionLevel(e models.ExecutionLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Execution = replaceByID(s.c.Execution, func(v models.ExecutionLevel) string { return v.ID }, e, e.ID)
	s.persist(KeyExecution, s.c.Execution)
}

func (s *Store) DeleteExecutionLevel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Execution = removeByID(s.c.Execution, func(v models.ExecutionLevel) string { return v.ID }, id)
	s.persist(KeyExecution, s.c.Execution)
}

// ---- Mess ----

func (s *Store) MessEntries() []models.MessEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.MessEntries)
}

func (s *Store) AddMessEntry(m models.MessEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.MessEntries = append(snapshot(s.c.MessEntries), m)
	s.persist(KeyMess, s.c.MessEntries)
}

func (s *Store) EditMessEntry(m models.MessEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.MessEntries = replaceByID(s.c.MessEntries, func(v models.MessEntry) string { return v.ID }, m, m.ID)
	s.persist(KeyMess, s.c.MessEntries)
}

func (s *Store) DeleteMessEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.MessEntries = removeByID(s.c.MessEntries, func(v models.MessEntry) string { return v.ID }, id)
	s.persist(KeyMess, s.c.MessEntries)
}

// ---- Worker payments ----

func (s *Store) WorkerPayments() []models.WorkerPayment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.WorkerPayments)
}

// SaveWorkerPayments applies a payroll batch keyed by (workerId, month).
// A re-run of the same month replaces the previous rows for those workers.
func (s *Store) SaveWorkerPayments(records []models.WorkerPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.WorkerPayments = upsertByKey(s.c.WorkerPayments, func(p models.WorkerPayment) string {
		return models.PaymentID(p.WorkerID, p.Month)
	}, records)
	s.persist(KeyWorkerPayments, s.c.WorkerPayments)
}

// ---- Attendance ----

func (s *Store) Attendance() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Attendance)
}

// UpsertAttendance applies a batch of marks keyed by (workerId, date). Only
// the worker-days present in the batch are touched; the rest of the register
// is left alone.
func (s *Store) UpsertAttendance(records []models.AttendanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Attendance = upsertByKey(s.c.Attendance, func(a models.AttendanceRecord) string {
		return a.WorkerID + "-" + a.Date
	}, records)
	s.persist(KeyAttendance, s.c.Attendance)
}

// ---- Stock consumption ----

func (s *Store) Consumption() []models.StockConsumption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Consumption)
}

func (s *Store) AddConsumption(c models.StockConsumption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Consumption = append(snapshot(s.c.Consumption), c)
	s.persist(KeyConsumption, s.c.Consumption)
}

func (s *Store) DeleteConsumption(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Consumption = removeByID(s.c.Consumption, func(v models.StockConsumption) string { return v.ID }, id)
	s.persist(KeyConsumption, s.c.Consumption)
}

// ---- Sync indicator ----

// LastSynced returns the cosmetic last-sync timestamp. It carries no
// correctness meaning; persistence is synchronous write-through regardless.
func (s *Store) LastSynced() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync
}

func (s *Store) MarkSynced() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSync = time.Now().Format(time.RFC3339)
	s.persist(KeyLastSync, s.lastSync)
	return s.lastSync
}

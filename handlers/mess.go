package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
)

func validateMessEntry(m models.MessEntry) map[string]string {
	errs := map[string]string{}
	if m.ProjectID == "" {
		errs["projectId"] = "Project is required"
	}
	if m.WorkerCount <= 0 {
		errs["workerCount"] = "Worker count must be greater than zero"
	}
	if m.Rate <= 0 {
		errs["rate"] = "Rate must be greater than zero"
	}
	if m.AmountPaid < 0 {
		errs["amountPaid"] = "Amount paid cannot be negative"
	}
	return errs
}

// finishMessEntry derives the billed total and outstanding balance.
// Balance may go negative when the mess is paid in advance.
func finishMessEntry(m *models.MessEntry) {
	m.TotalAmount = float64(m.WorkerCount) * m.Rate
	m.Balance = m.TotalAmount - m.AmountPaid
}

func GetMessEntries(w http.ResponseWriter, r *http.Request) {
	entries := config.App.MessEntries()
	projectID := r.URL.Query().Get("projectId")

	filtered := make([]models.MessEntry, 0, len(entries))
	for _, m := range entries {
		if projectID != "" && m.ProjectID != projectID {
			continue
		}
		filtered = append(filtered, m)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"messEntries": filtered,
		"count":       len(filtered),
	})
}

func CreateMessEntry(w http.ResponseWriter, r *http.Request) {
	var m models.MessEntry
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if errs := validateMessEntry(m); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	m.ID = uuid.NewString()
	finishMessEntry(&m)
	config.App.AddMessEntry(m)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

func UpdateMessEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !messEntryExists(id) {
		http.Error(w, "Mess entry not found", http.StatusNotFound)
		return
	}

	var m models.MessEntry
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if errs := validateMessEntry(m); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	m.ID = id
	finishMessEntry(&m)
	config.App.EditMessEntry(m)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

func DeleteMessEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	config.App.DeleteMessEntry(id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Mess entry deleted"})
}

func messEntryExists(id string) bool {
	for _, m := range config.App.MessEntries() {
		if m.ID == id {
			return true
		}
	}
	return false
}

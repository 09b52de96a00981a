package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
)

func GetAllAdvances(w http.ResponseWriter, r *http.Request) {
	advances := config.App.Advances()
	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		filtered := advances[:0]
		for _, a := range advances {
			if a.ProjectID == projectID {
				filtered = append(filtered, a)
			}
		}
		advances = filtered
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"advances": advances,
		"count":    len(advances),
	})
}

func CreateAdvance(w http.ResponseWriter, r *http.Request) {
	var item models.AdvanceEntry
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.WorkerID == "" || item.ProjectID == "" {
		http.Error(w, "workerId and projectId are required", http.StatusBadRequest)
		return
	}
	if item.Amount <= 0 {
		http.Error(w, "amount must be greater than zero", http.StatusBadRequest)
		return
	}
	item.ID = uuid.NewString()
	item.SerialNo = len(config.App.Advances()) + 1
	if item.PaidBy == "" {
		item.PaidBy = "Admin"
	}
	if item.PaymentMode == "" {
		item.PaymentMode = "Cash"
	}

	config.App.AddAdvance(item)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func UpdateAdvance(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.AdvanceEntry
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Amount <= 0 {
		http.Error(w, "amount must be greater than zero", http.StatusBadRequest)
		return
	}
	item.ID = id
	var current *models.AdvanceEntry
	for _, a := range config.App.Advances() {
		if a.ID == id {
			current = &a
			break
		}
	}
	if current == nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	// Serial numbers are assigned once and survive edits.
	item.SerialNo = current.SerialNo

	config.App.EditAdvance(item)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteAdvance(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	found := false
	for _, a := range config.App.Advances() {
		if a.ID == id {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	config.App.DeleteAdvance(id)
	w.WriteHeader(http.StatusNoContent)
}

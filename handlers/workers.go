package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
	"github.com/itousif38-netizen/SN-ENTP/store"
)

func validateWorker(wk models.Worker, existing []models.Worker, editingID string) map[string]string {
	errs := map[string]string{}
	if wk.ProjectID == "" {
		errs["projectId"] = "Project is required."
	}
	if wk.Name == "" {
		errs["name"] = "Worker Name is required."
	}
	if wk.SerialNo <= 0 {
		errs["serialNo"] = "Valid SR No is required."
	}
	if wk.JoiningDate == "" {
		errs["joiningDate"] = "Joining Date is required."
	}
	if wk.JoiningDate != "" && wk.ExitDate != "" && wk.ExitDate < wk.JoiningDate {
		errs["exitDate"] = "Exit Date cannot be before Joining Date."
	}
	// Serial numbers stay unique within a project.
	for _, other := range existing {
		if other.ProjectID == wk.ProjectID && other.SerialNo == wk.SerialNo && other.ID != editingID {
			errs["serialNo"] = "Serial No already used in this project."
			break
		}
	}
	return errs
}

func GetAllWorkers(w http.ResponseWriter, r *http.Request) {
	workers := config.App.Workers()
	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		filtered := workers[:0]
		for _, wk := range workers {
			if wk.ProjectID == projectID {
				filtered = append(filtered, wk)
			}
		}
		workers = filtered
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"workers": workers,
		"count":   len(workers),
	})
}

// NextWorkerBusinessID previews the auto-generated business ID for the next
// worker joining a project. The ID is fixed once the worker is created.
func NextWorkerBusinessID(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	if projectID == "" {
		http.Error(w, "projectId is required", http.StatusBadRequest)
		return
	}
	var project *models.Project
	for _, p := range config.App.Projects() {
		if p.ID == projectID {
			project = &p
			break
		}
	}
	if project == nil {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	count := 0
	for _, wk := range config.App.Workers() {
		if wk.ProjectID == projectID {
			count++
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"workerId": store.NextWorkerID(*project, count),
	})
}

func CreateWorker(w http.ResponseWriter, r *http.Request) {
	var item models.Worker
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	existing := config.App.Workers()
	if errs := validateWorker(item, existing, ""); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	item.ID = uuid.NewString()

	// Assign the business ID at creation time only; a manual ID on the form
	// wins over the generated one and is never checked for collisions.
	if item.WorkerID == "" {
		for _, p := range config.App.Projects() {
			if p.ID == item.ProjectID {
				count := 0
				for _, wk := range existing {
					if wk.ProjectID == item.ProjectID {
						count++
					}
				}
				item.WorkerID = store.NextWorkerID(p, count)
				break
			}
		}
	}
	if item.Designation == "" {
		item.Designation = "Worker"
	}

	config.App.AddWorker(item)
	log.Printf("✅ Added worker %s (%s)", item.Name, item.WorkerID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetWorker(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	for _, wk := range config.App.Workers() {
		if wk.ID == id {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(wk)
			return
		}
	}
	http.Error(w, "record not found", http.StatusNotFound)
}

func UpdateWorker(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.Worker
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = id
	existing := config.App.Workers()
	if errs := validateWorker(item, existing, id); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	found := false
	for _, wk := range existing {
		if wk.ID == id {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	config.App.EditWorker(item)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteWorker(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	found := false
	for _, wk := range config.App.Workers() {
		if wk.ID == id {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	config.App.DeleteWorker(id)
	w.WriteHeader(http.StatusNoContent)
}

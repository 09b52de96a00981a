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

// validateProject enforces the form-level rules before anything reaches the
// store. Field errors come back keyed by field name for inline display.
func validateProject(p models.Project) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "Project Name is required."
	}
	if p.Budget <= 0 {
		errs["budget"] = "Budget must be greater than zero."
	}
	if p.StartDate == "" {
		errs["startDate"] = "Start Date is required."
	}
	if p.StartDate != "" && p.CompletionDate != "" && p.CompletionDate < p.StartDate {
		errs["completionDate"] = "Completion Date cannot be before Start Date."
	}
	if p.CompletionPercentage < 0 || p.CompletionPercentage > 100 {
		errs["completionPercentage"] = "Progress must be between 0 and 100."
	}
	switch p.Status {
	case models.StatusPlanning, models.StatusInProgress, models.StatusOnHold, models.StatusCompleted:
	default:
		errs["status"] = "Invalid project status."
	}
	return errs
}

// writeValidationErrors sends field-level messages with a 422.
func writeValidationErrors(w http.ResponseWriter, errs map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]interface{}{"errors": errs})
}

func GetAllProjects(w http.ResponseWriter, r *http.Request) {
	projects := config.App.Projects()

	type projectView struct {
		models.Project
		Health string `json:"health"`
	}
	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, projectView{Project: p, Health: store.ProjectHealth(p)})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"projects": views,
		"count":    len(views),
	})
}

func CreateProject(w http.ResponseWriter, r *http.Request) {
	var item models.Project
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Status == "" {
		item.Status = models.StatusPlanning
	}
	if errs := validateProject(item); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	item.ID = uuid.NewString()

	config.App.AddProject(item)
	log.Printf("✅ Created project %s (%s)", item.Name, item.ID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetProject(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	for _, p := range config.App.Projects() {
		if p.ID == id {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(p)
			return
		}
	}
	http.Error(w, "record not found", http.StatusNotFound)
}

func UpdateProject(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.Project
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = id
	if errs := validateProject(item); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if !projectExists(id) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	// Full-record replace: the submitted form carries every field.
	config.App.EditProject(item)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteProject(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	if !projectExists(id) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	config.App.DeleteProject(id)
	log.Printf("✅ Deleted project %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func projectExists(id string) bool {
	for _, p := range config.App.Projects() {
		if p.ID == id {
			return true
		}
	}
	return false
}

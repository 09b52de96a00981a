package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
)

func GetExecutionLevels(w http.ResponseWriter, r *http.Request) {
	levels := config.App.ExecutionLevels()
	projectID := r.URL.Query().Get("projectId")

	filtered := make([]models.ExecutionLevel, 0, len(levels))
	for _, l := range levels {
		if projectID != "" && l.ProjectID != projectID {
			continue
		}
		filtered = append(filtered, l)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"levels": filtered,
		"count":  len(filtered),
	})
}

func validateExecutionLevel(l models.ExecutionLevel) map[string]string {
	errs := map[string]string{}
	if l.ProjectID == "" {
		errs["projectId"] = "Project is required"
	}
	if strings.TrimSpace(l.LevelName) == "" {
		errs["levelName"] = "Level name is required"
	}
	return errs
}

func CreateExecutionLevel(w http.ResponseWriter, r *http.Request) {
	var l models.ExecutionLevel
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if errs := validateExecutionLevel(l); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	l.ID = uuid.NewString()
	if l.Pours == nil {
		l.Pours = []string{}
	}
	config.App.AddExecutionLevel(l)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

func UpdateExecutionLevel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !executionLevelExists(id) {
		http.Error(w, "Execution level not found", http.StatusNotFound)
		return
	}

	var l models.ExecutionLevel
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if errs := validateExecutionLevel(l); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	l.ID = id
	if l.Pours == nil {
		l.Pours = []string{}
	}
	config.App.EditExecutionLevel(l)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

func DeleteExecutionLevel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	config.App.DeleteExecutionLevel(id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Execution level deleted"})
}

func executionLevelExists(id string) bool {
	for _, l := range config.App.ExecutionLevels() {
		if l.ID == id {
			return true
		}
	}
	return false
}

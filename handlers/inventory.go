package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
	"github.com/itousif38-netizen/SN-ENTP/store"
)

func GetConsumption(w http.ResponseWriter, r *http.Request) {
	entries := config.App.Consumption()
	projectID := r.URL.Query().Get("projectId")

	filtered := make([]models.StockConsumption, 0, len(entries))
	for _, c := range entries {
		if projectID != "" && c.ProjectID != projectID {
			continue
		}
		filtered = append(filtered, c)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"consumption": filtered,
		"count":       len(filtered),
	})
}

func CreateConsumption(w http.ResponseWriter, r *http.Request) {
	var c models.StockConsumption
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	errs := map[string]string{}
	if c.ProjectID == "" {
		errs["projectId"] = "Project is required"
	}
	if strings.TrimSpace(c.MaterialName) == "" {
		errs["materialName"] = "Material name is required"
	}
	if c.Quantity <= 0 {
		errs["quantity"] = "Quantity must be greater than zero"
	}
	if c.Date == "" {
		errs["date"] = "Date is required"
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	c.ID = uuid.NewString()
	config.App.AddConsumption(c)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

func DeleteConsumption(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	config.App.DeleteConsumption(id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Consumption entry deleted"})
}

// GetInventoryBalances returns per-material running stock for a project:
// total purchased minus total consumed, matched by normalized material name.
func GetInventoryBalances(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	if projectID == "" {
		http.Error(w, "projectId is required", http.StatusBadRequest)
		return
	}

	balances := store.InventoryBalances(config.App.Purchases(), config.App.Consumption(), projectID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"projectId": projectID,
		"balances":  balances,
		"count":     len(balances),
	})
}

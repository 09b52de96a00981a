package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
)

func validatePurchase(p models.PurchaseEntry) map[string]string {
	errs := map[string]string{}
	if p.ProjectID == "" {
		errs["projectId"] = "Project is required"
	}
	if strings.TrimSpace(p.Description) == "" {
		errs["description"] = "Material description is required"
	}
	if p.Quantity <= 0 {
		errs["quantity"] = "Quantity must be greater than zero"
	}
	if p.Rate <= 0 {
		errs["rate"] = "Rate must be greater than zero"
	}
	if p.Date == "" {
		errs["date"] = "Date is required"
	}
	return errs
}

func GetAllPurchases(w http.ResponseWriter, r *http.Request) {
	purchases := config.App.Purchases()
	projectID := r.URL.Query().Get("projectId")

	filtered := make([]models.PurchaseEntry, 0, len(purchases))
	for _, p := range purchases {
		if projectID != "" && p.ProjectID != projectID {
			continue
		}
		filtered = append(filtered, p)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"purchases": filtered,
		"count":     len(filtered),
	})
}

func CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var p models.PurchaseEntry
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if errs := validatePurchase(p); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	p.ID = uuid.NewString()
	p.SerialNo = len(config.App.Purchases()) + 1
	p.TotalAmount = p.Quantity * p.Rate

	config.App.AddPurchase(p)
	log.Printf("✅ Purchase recorded: %s x%.2f %s", p.Description, p.Quantity, p.Unit)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

func UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var existing *models.PurchaseEntry
	for _, p := range config.App.Purchases() {
		if p.ID == id {
			existing = &p
			break
		}
	}
	if existing == nil {
		http.Error(w, "Purchase not found", http.StatusNotFound)
		return
	}

	var p models.PurchaseEntry
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if errs := validatePurchase(p); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	p.ID = id
	p.SerialNo = existing.SerialNo
	p.TotalAmount = p.Quantity * p.Rate

	config.App.EditPurchase(p)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func DeletePurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	config.App.DeletePurchase(id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Purchase deleted"})
}

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

func validateBill(b models.Bill) map[string]string {
	errs := map[string]string{}
	if b.ProjectID == "" {
		errs["projectId"] = "Project is required."
	}
	if b.BillNo == "" {
		errs["billNo"] = "Bill No is required."
	}
	if b.Amount <= 0 {
		errs["amount"] = "Amount must be greater than zero."
	}
	if b.BillingMonth == "" {
		errs["billingMonth"] = "Billing Month is required."
	}
	return errs
}

func GetAllBills(w http.ResponseWriter, r *http.Request) {
	bills := config.App.Bills()
	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		filtered := bills[:0]
		for _, b := range bills {
			if b.ProjectID == projectID {
				filtered = append(filtered, b)
			}
		}
		bills = filtered
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"bills": bills,
		"count": len(bills),
	})
}

func CreateBill(w http.ResponseWriter, r *http.Request) {
	var item models.Bill
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if errs := validateBill(item); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	item.ID = uuid.NewString()
	if item.GSTAmount > 0 && item.GrandTotal == 0 {
		item.GrandTotal = item.Amount + item.GSTAmount
	}

	config.App.AddBill(item)
	log.Printf("✅ Created bill %s for project %s", item.BillNo, item.ProjectID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func UpdateBill(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.Bill
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = id
	if errs := validateBill(item); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	found := false
	for _, b := range config.App.Bills() {
		if b.ID == id {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if item.GSTAmount > 0 && item.GrandTotal == 0 {
		item.GrandTotal = item.Amount + item.GSTAmount
	}
	config.App.EditBill(item)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteBill(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	found := false
	for _, b := range config.App.Bills() {
		if b.ID == id {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	config.App.DeleteBill(id)
	w.WriteHeader(http.StatusNoContent)
}

// ---- Client payments ----

func GetAllClientPayments(w http.ResponseWriter, r *http.Request) {
	payments := config.App.ClientPayments()
	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		filtered := payments[:0]
		for _, p := range payments {
			if p.ProjectID == projectID {
				filtered = append(filtered, p)
			}
		}
		payments = filtered
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"payments": payments,
		"count":    len(payments),
	})
}

func CreateClientPayment(w http.ResponseWriter, r *http.Request) {
	var item models.ClientPayment
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.ProjectID == "" || item.Amount <= 0 || item.Date == "" {
		http.Error(w, "projectId, date and a positive amount are required", http.StatusBadRequest)
		return
	}
	item.ID = uuid.NewString()

	config.App.AddClientPayment(item)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func UpdateClientPayment(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.ClientPayment
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = id
	found := false
	for _, p := range config.App.ClientPayments() {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	config.App.EditClientPayment(item)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteClientPayment(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	found := false
	for _, p := range config.App.ClientPayments() {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	config.App.DeleteClientPayment(id)
	w.WriteHeader(http.StatusNoContent)
}

// GetGSTSummary totals the GST line over bills, optionally per project.
func GetGSTSummary(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	bills := config.App.Bills()

	filtered := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if projectID == "" || projectID == "All" || b.ProjectID == projectID {
			filtered = append(filtered, b)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"totalGst": store.GSTLiability(bills, projectID),
		"bills":    filtered,
		"count":    len(filtered),
	})
}

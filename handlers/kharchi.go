package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
	"github.com/itousif38-netizen/SN-ENTP/store"
)

func GetKharchi(w http.ResponseWriter, r *http.Request) {
	entries := config.App.KharchiEntries()
	projectID := r.URL.Query().Get("projectId")
	month := r.URL.Query().Get("month")

	filtered := make([]models.KharchiEntry, 0, len(entries))
	for _, k := range entries {
		if projectID != "" && k.ProjectID != projectID {
			continue
		}
		if month != "" && !strings.HasPrefix(k.Date, month) {
			continue
		}
		filtered = append(filtered, k)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"kharchi": filtered,
		"count":   len(filtered),
	})
}

// GetKharchiSundays enumerates the payable dates for a month. Kharchi is
// only handed out on Sundays, so these are the only dates the register takes.
func GetKharchiSundays(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		http.Error(w, "month is required (format 2006-01)", http.StatusBadRequest)
		return
	}
	sundays, err := store.SundaysInMonth(month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"month":   month,
		"sundays": sundays,
	})
}

// SaveKharchi upserts a batch of worker-day entries. Each entry's date must
// be a Sunday; the entry ID is derived from (workerId, date) so a re-save of
// the same sheet replaces rather than duplicates.
func SaveKharchi(w http.ResponseWriter, r *http.Request) {
	var batch []models.KharchiEntry
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	for i := range batch {
		k := &batch[i]
		if k.WorkerID == "" || k.ProjectID == "" || k.Date == "" {
			http.Error(w, "workerId, projectId and date are required on every entry", http.StatusBadRequest)
			return
		}
		if k.Amount < 0 {
			http.Error(w, "amount cannot be negative", http.StatusBadRequest)
			return
		}
		if !isSunday(k.Date) {
			http.Error(w, "kharchi can only be recorded against a Sunday: "+k.Date, http.StatusBadRequest)
			return
		}
		k.ID = models.KharchiID(k.WorkerID, k.Date)
	}

	config.App.UpsertKharchi(batch)
	log.Printf("✅ Saved %d kharchi entries", len(batch))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Kharchi saved",
		"count":   len(batch),
	})
}

func DeleteKharchi(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	config.App.DeleteKharchi(id)
	w.WriteHeader(http.StatusNoContent)
}

func isSunday(date string) bool {
	sundays, err := store.SundaysInMonth(monthOf(date))
	if err != nil {
		return false
	}
	for _, s := range sundays {
		if s == date {
			return true
		}
	}
	return false
}

func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

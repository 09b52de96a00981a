package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
)

func GetAttendance(w http.ResponseWriter, r *http.Request) {
	records := config.App.Attendance()
	projectID := r.URL.Query().Get("projectId")
	date := r.URL.Query().Get("date")

	filtered := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if projectID != "" && rec.ProjectID != projectID {
			continue
		}
		if date != "" && rec.Date != date {
			continue
		}
		filtered = append(filtered, rec)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"attendance": filtered,
		"count":      len(filtered),
	})
}

// SaveAttendance takes the register for one project-day and upserts it by
// (workerId, date). Marks for other days and projects are untouched.
func SaveAttendance(w http.ResponseWriter, r *http.Request) {
	var batch []models.AttendanceRecord
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	for i := range batch {
		rec := &batch[i]
		if rec.WorkerID == "" || rec.ProjectID == "" || rec.Date == "" {
			http.Error(w, "workerId, projectId and date are required on every record", http.StatusBadRequest)
			return
		}
		switch rec.Status {
		case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceHalfDay:
		default:
			http.Error(w, "invalid attendance status: "+rec.Status, http.StatusBadRequest)
			return
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
	}

	config.App.UpsertAttendance(batch)
	log.Printf("✅ Saved %d attendance records", len(batch))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Attendance saved",
		"count":   len(batch),
	})
}

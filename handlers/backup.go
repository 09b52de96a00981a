package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/store"
	"github.com/itousif38-netizen/SN-ENTP/utils"
)

// ExportBackup downloads every collection as one JSON document. When
// BACKUP_BUCKET is set, a copy also goes to Google Cloud Storage; a failed
// upload is logged but never blocks the download.
func ExportBackup(w http.ResponseWriter, r *http.Request) {
	snapshot := config.App.Snapshot()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		http.Error(w, "Failed to generate backup", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	filename := fmt.Sprintf("SN_Enterprise_Backup_%s_%s.json",
		now.Format("2006-01-02"), now.Format("150405"))

	if os.Getenv("BACKUP_BUCKET") != "" {
		go func() {
			if err := utils.UploadBackupToGCS(context.Background(), filename, data); err != nil {
				log.Printf("❌ Off-site backup copy failed: %v", err)
			} else {
				log.Printf("✅ Backup copied to GCS as %s", filename)
			}
		}()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ImportBackup replaces the collections from an uploaded backup document.
// An unreadable or invalid document is rejected before anything is applied,
// so the existing data survives a bad file untouched.
func ImportBackup(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 32<<20))
	if err != nil {
		http.Error(w, "Failed to read backup file", http.StatusBadRequest)
		return
	}

	doc, err := store.ParseRestore(body)
	if err != nil {
		if errors.Is(err, store.ErrInvalidBackup) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, "Backup file is not valid JSON", http.StatusBadRequest)
		}
		return
	}

	config.App.Restore(doc)
	log.Printf("✅ Backup restored (%d projects)", len(*doc.Projects))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Backup restored successfully"})
}

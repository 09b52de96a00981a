package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
	"github.com/itousif38-netizen/SN-ENTP/store"
	"github.com/xuri/excelize/v2"
)

// ExportKharchiExcel downloads the month's kharchi sheet: one row per
// worker, one column per Sunday, row totals at the end.
func ExportKharchiExcel(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	month := r.URL.Query().Get("month")
	if projectID == "" || month == "" {
		http.Error(w, "projectId and month are required", http.StatusBadRequest)
		return
	}
	sundays, err := store.SundaysInMonth(month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var workers []models.Worker
	for _, wk := range config.App.Workers() {
		if wk.ProjectID == projectID {
			workers = append(workers, wk)
		}
	}
	sort.Slice(workers, func(i, j int) bool { return workers[i].SerialNo < workers[j].SerialNo })

	// amount per (workerId, date)
	amounts := map[string]float64{}
	for _, k := range config.App.KharchiEntries() {
		amounts[models.KharchiID(k.WorkerID, k.Date)] = k.Amount
	}

	f := excelize.NewFile()
	sheet := "Kharchi"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"SR No", "Worker ID", "Name"}
	for _, day := range sundays {
		header = append(header, day)
	}
	header = append(header, "Total")
	for col, h := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, wk := range workers {
		row := i + 2
		values := []interface{}{wk.SerialNo, wk.WorkerID, wk.Name}
		var total float64
		for _, day := range sundays {
			amount := amounts[models.KharchiID(wk.ID, day)]
			total += amount
			values = append(values, amount)
		}
		values = append(values, total)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("Kharchi_%s_%s.xlsx", month, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

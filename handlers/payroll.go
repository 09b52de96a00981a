package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
	"github.com/itousif38-netizen/SN-ENTP/store"
	"github.com/xuri/excelize/v2"
)

// PayrollRow is one computed line of the monthly payment sheet. Deductions
// are derived from the kharchi and advance registers for the month; the work
// and mess amounts are keyed in by the supervisor.
type PayrollRow struct {
	SerialNo         int     `json:"serialNo"`
	WorkerID         string  `json:"workerId"`
	WorkerCode       string  `json:"workerCode"`
	Name             string  `json:"name"`
	Designation      string  `json:"designation"`
	WorkAmount       float64 `json:"workAmount"`
	MessDeduction    float64 `json:"messDeduction"`
	KharchiDeduction float64 `json:"kharchiDeduction"`
	AdvanceDeduction float64 `json:"advanceDeduction"`
	NetPayable       float64 `json:"netPayable"`
}

func buildPayrollRows(projectID, month string, workAmounts, messDeductions map[string]float64) []PayrollRow {
	kharchi := config.App.KharchiEntries()
	advances := config.App.Advances()

	var rows []PayrollRow
	for _, wk := range config.App.Workers() {
		if wk.ProjectID != projectID {
			continue
		}
		kharchiTotal, advanceTotal := store.MonthlyDeductions(kharchi, advances, wk.ID, month)
		work := workAmounts[wk.ID]
		mess := messDeductions[wk.ID]
		rows = append(rows, PayrollRow{
			SerialNo:         wk.SerialNo,
			WorkerID:         wk.ID,
			WorkerCode:       wk.WorkerID,
			Name:             wk.Name,
			Designation:      wk.Designation,
			WorkAmount:       work,
			MessDeduction:    mess,
			KharchiDeduction: kharchiTotal,
			AdvanceDeduction: advanceTotal,
			NetPayable:       store.NetPayable(work, mess, kharchiTotal, advanceTotal),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SerialNo < rows[j].SerialNo })
	return rows
}

// GetPayrollSheet computes the month's payment sheet for a project without
// saving anything. Work/mess amounts default to zero until keyed in.
func GetPayrollSheet(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	month := r.URL.Query().Get("month")
	if projectID == "" || month == "" {
		http.Error(w, "projectId and month are required", http.StatusBadRequest)
		return
	}

	rows := buildPayrollRows(projectID, month, nil, nil)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"projectId": projectID,
		"month":     month,
		"rows":      rows,
		"count":     len(rows),
	})
}

type savePayrollRequest struct {
	ProjectID      string             `json:"projectId"`
	Month          string             `json:"month"`
	WorkAmounts    map[string]float64 `json:"workAmounts"`
	MessDeductions map[string]float64 `json:"messDeductions"`
}

// SavePayroll settles the month: computes every row and upserts one
// WorkerPayment per (worker, month). Re-saving a month replaces its rows.
func SavePayroll(w http.ResponseWriter, r *http.Request) {
	var req savePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ProjectID == "" || req.Month == "" {
		http.Error(w, "projectId and month are required", http.StatusBadRequest)
		return
	}

	rows := buildPayrollRows(req.ProjectID, req.Month, req.WorkAmounts, req.MessDeductions)
	if len(rows) == 0 {
		http.Error(w, "no workers on this project", http.StatusBadRequest)
		return
	}

	now := time.Now().Format(time.RFC3339)
	records := make([]models.WorkerPayment, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.WorkerPayment{
			ID:               models.PaymentID(row.WorkerID, req.Month),
			SerialNo:         row.SerialNo,
			WorkerID:         row.WorkerID,
			ProjectID:        req.ProjectID,
			Month:            req.Month,
			WorkAmount:       row.WorkAmount,
			MessDeduction:    row.MessDeduction,
			KharchiDeduction: row.KharchiDeduction,
			AdvanceDeduction: row.AdvanceDeduction,
			NetPayable:       row.NetPayable,
			IsPaid:           true,
			Date:             now,
		})
	}

	config.App.SaveWorkerPayments(records)
	log.Printf("✅ Settled payroll for project %s, month %s (%d records)", req.ProjectID, req.Month, len(records))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": fmt.Sprintf("Saved %d records.", len(records)),
		"records": records,
	})
}

func GetWorkerPayments(w http.ResponseWriter, r *http.Request) {
	payments := config.App.WorkerPayments()
	projectID := r.URL.Query().Get("projectId")
	month := r.URL.Query().Get("month")

	filtered := make([]models.WorkerPayment, 0, len(payments))
	for _, p := range payments {
		if projectID != "" && p.ProjectID != projectID {
			continue
		}
		if month != "" && p.Month != month {
			continue
		}
		filtered = append(filtered, p)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"payments": filtered,
		"count":    len(filtered),
	})
}

var payrollHeader = []string{"SR No", "Worker ID", "Name", "Designation", "Work Amount", "Mess", "Kharchi", "Advance", "Net Payable"}

// ExportPayrollExcel downloads the settled month as an .xlsx sheet.
func ExportPayrollExcel(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	month := r.URL.Query().Get("month")
	if projectID == "" || month == "" {
		http.Error(w, "projectId and month are required", http.StatusBadRequest)
		return
	}
	rows := savedPayrollRows(projectID, month)

	f := excelize.NewFile()
	sheet := "Payroll"
	f.SetSheetName("Sheet1", sheet)
	for col, h := range payrollHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		values := []interface{}{
			row.SerialNo, row.WorkerCode, row.Name, row.Designation,
			row.WorkAmount, row.MessDeduction, row.KharchiDeduction,
			row.AdvanceDeduction, row.NetPayable,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("Payroll_%s_%s.xlsx", month, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportPayrollCSV downloads the settled month as CSV.
func ExportPayrollCSV(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	month := r.URL.Query().Get("month")
	if projectID == "" || month == "" {
		http.Error(w, "projectId and month are required", http.StatusBadRequest)
		return
	}
	rows := savedPayrollRows(projectID, month)

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Write(payrollHeader)
	for _, row := range rows {
		cw.Write([]string{
			strconv.Itoa(row.SerialNo),
			row.WorkerCode,
			row.Name,
			row.Designation,
			strconv.FormatFloat(row.WorkAmount, 'f', 2, 64),
			strconv.FormatFloat(row.MessDeduction, 'f', 2, 64),
			strconv.FormatFloat(row.KharchiDeduction, 'f', 2, 64),
			strconv.FormatFloat(row.AdvanceDeduction, 'f', 2, 64),
			strconv.FormatFloat(row.NetPayable, 'f', 2, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		http.Error(w, "Failed to generate CSV file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("Payroll_%s_%s.csv", month, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// savedPayrollRows reads back the settled records for export, falling back
// to worker info for names and codes.
func savedPayrollRows(projectID, month string) []PayrollRow {
	workers := map[string]models.Worker{}
	for _, wk := range config.App.Workers() {
		workers[wk.ID] = wk
	}

	var rows []PayrollRow
	for _, p := range config.App.WorkerPayments() {
		if p.ProjectID != projectID || p.Month != month {
			continue
		}
		wk := workers[p.WorkerID]
		rows = append(rows, PayrollRow{
			SerialNo:         p.SerialNo,
			WorkerID:         p.WorkerID,
			WorkerCode:       wk.WorkerID,
			Name:             wk.Name,
			Designation:      wk.Designation,
			WorkAmount:       p.WorkAmount,
			MessDeduction:    p.MessDeduction,
			KharchiDeduction: p.KharchiDeduction,
			AdvanceDeduction: p.AdvanceDeduction,
			NetPayable:       p.NetPayable,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SerialNo < rows[j].SerialNo })
	return rows
}

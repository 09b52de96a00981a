package handlers

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/itousif38-netizen/SN-ENTP/config"
	"github.com/itousif38-netizen/SN-ENTP/models"
	"github.com/itousif38-netizen/SN-ENTP/store"
)

// GetDashboard aggregates the home-screen numbers in one call: project
// counts and health, workforce size, financial totals and the attendance
// trend. Everything is recomputed from the live collections.
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")

	projects := config.App.Projects()
	workers := config.App.Workers()
	snapshot := config.App.Snapshot()

	type projectSummary struct {
		models.Project
		Health string `json:"health"`
	}
	summaries := make([]projectSummary, 0, len(projects))
	active := 0
	var totalBudget, totalSpent float64
	for _, p := range projects {
		if projectID != "" && projectID != "All" && p.ID != projectID {
			continue
		}
		if p.Status == models.StatusInProgress {
			active++
		}
		totalBudget += p.Budget
		totalSpent += p.Spent
		summaries = append(summaries, projectSummary{Project: p, Health: store.ProjectHealth(p)})
	}

	workerCount := 0
	for _, wk := range workers {
		if projectID != "" && projectID != "All" && wk.ProjectID != projectID {
			continue
		}
		workerCount++
	}

	income, expense := store.ProfitAndLoss(snapshot, projectID)

	trend := store.PresentCountByDate(snapshot.Attendance, projectID)
	type trendPoint struct {
		Date    string `json:"date"`
		Present int    `json:"present"`
	}
	points := make([]trendPoint, 0, len(trend))
	for date, count := range trend {
		points = append(points, trendPoint{Date: date, Present: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"projects":        summaries,
		"activeProjects":  active,
		"totalBudget":     totalBudget,
		"totalSpent":      totalSpent,
		"workerCount":     workerCount,
		"totalIncome":     income,
		"totalExpense":    expense,
		"netProfit":       income - expense,
		"attendanceTrend": points,
	})
}

// GetProfitAndLoss reports the income/expense breakdown for the P&L screen.
func GetProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	snapshot := config.App.Snapshot()

	match := func(pid string) bool {
		return projectID == "" || projectID == "All" || pid == projectID
	}

	var purchases, kharchi, advances, payroll, income float64
	for _, p := range snapshot.Purchases {
		if match(p.ProjectID) {
			purchases += p.TotalAmount
		}
	}
	for _, k := range snapshot.Kharchi {
		if match(k.ProjectID) {
			kharchi += k.Amount
		}
	}
	for _, a := range snapshot.Advances {
		if match(a.ProjectID) {
			advances += a.Amount
		}
	}
	for _, wp := range snapshot.WorkerPayments {
		if match(wp.ProjectID) {
			payroll += wp.NetPayable
		}
	}
	for _, cp := range snapshot.ClientPayments {
		if match(cp.ProjectID) {
			income += cp.Amount
		}
	}
	expense := purchases + kharchi + advances + payroll

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"projectId": projectID,
		"income":    income,
		"expense":   expense,
		"netProfit": income - expense,
		"breakdown": map[string]float64{
			"purchases": purchases,
			"kharchi":   kharchi,
			"advances":  advances,
			"payroll":   payroll,
		},
	})
}

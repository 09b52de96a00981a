package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/itousif38-netizen/SN-ENTP/models"
)

// Derived metrics are recomputed from the current collections on every read.
// The inputs are small enough that no caching is worth the bookkeeping.

// Budget health bands.
const (
	HealthStable   = "stable"
	HealthWarning  = "warning"
	HealthCritical = "critical"
)

// ProjectHealth grades budget consumption against reported progress:
// critical above 90% budget used, warning when spend runs more than 10
// points ahead of completion, stable otherwise.
func ProjectHealth(p models.Project) string {
	if p.Budget <= 0 {
		return HealthStable
	}
	budgetUsed := p.Spent / p.Budget
	completion := p.CompletionPercentage / 100
	if budgetUsed > 0.9 {
		return HealthCritical
	}
	if budgetUsed > completion+0.1 {
		return HealthWarning
	}
	return HealthStable
}

// GSTLiability totals the GST line over bills, optionally filtered to one
// project. An empty or "All" projectID means every bill counts.
func GSTLiability(bills []models.Bill, projectID string) float64 {
	var total float64
	for _, b := range bills {
		if projectID != "" && projectID != "All" && b.ProjectID != projectID {
			continue
		}
		total += b.GSTAmount
	}
	return total
}

// MaterialBalance is the running stock position for one material name.
type MaterialBalance struct {
	Material     string  `json:"material"`
	Unit         string  `json:"unit"`
	Purchased    float64 `json:"purchased"`
	Consumed     float64 `json:"consumed"`
	Balance      float64 `json:"balance"`
	UnitMismatch bool    `json:"unitMismatch,omitempty"`
}

// InventoryBalances groups purchases and consumption by case-insensitive
// trimmed material name and nets them. The displayed unit is the one on the
// first purchase of that material; later entries with a different unit set
// the mismatch flag instead of silently switching units. Balances may go
// negative; a site can book consumption before the purchase is entered.
func InventoryBalances(purchases []models.PurchaseEntry, consumption []models.StockConsumption, projectID string) []MaterialBalance {
	type bucket struct {
		display   string
		unit      string
		purchased float64
		consumed  float64
		mismatch  bool
	}
	buckets := map[string]*bucket{}

	get := func(name, unit string) *bucket {
		key := strings.ToLower(strings.TrimSpace(name))
		b, ok := buckets[key]
		if !ok {
			b = &bucket{display: strings.TrimSpace(name), unit: unit}
			buckets[key] = b
		} else if b.unit != "" && unit != "" && !strings.EqualFold(b.unit, unit) {
			b.mismatch = true
		}
		return b
	}

	for _, p := range purchases {
		if projectID != "" && projectID != "All" && p.ProjectID != projectID {
			continue
		}
		get(p.Description, p.Unit).purchased += p.Quantity
	}
	for _, c := range consumption {
		if projectID != "" && projectID != "All" && c.ProjectID != projectID {
			continue
		}
		get(c.MaterialName, c.Unit).consumed += c.Quantity
	}

	out := make([]MaterialBalance, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, MaterialBalance{
			Material:     b.display,
			Unit:         b.unit,
			Purchased:    b.purchased,
			Consumed:     b.consumed,
			Balance:      b.purchased - b.consumed,
			UnitMismatch: b.mismatch,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Material) < strings.ToLower(out[j].Material)
	})
	return out
}

// ProfitAndLoss sums income (client payments) against expense (purchases +
// kharchi + advances + settled payroll), optionally filtered to one project.
func ProfitAndLoss(c Collections, projectID string) (income, expense float64) {
	match := func(pid string) bool {
		return projectID == "" || projectID == "All" || pid == projectID
	}
	for _, p := range c.Purchases {
		if match(p.ProjectID) {
			expense += p.TotalAmount
		}
	}
	for _, k := range c.Kharchi {
		if match(k.ProjectID) {
			expense += k.Amount
		}
	}
	for _, a := range c.Advances {
		if match(a.ProjectID) {
			expense += a.Amount
		}
	}
	for _, w := range c.WorkerPayments {
		if match(w.ProjectID) {
			expense += w.NetPayable
		}
	}
	for _, p := range c.ClientPayments {
		if match(p.ProjectID) {
			income += p.Amount
		}
	}
	return income, expense
}

// MonthlyDeductions totals a worker's kharchi and advances for one
// year-month ("2006-01"). Dates are ISO days, so a prefix match selects the
// month.
func MonthlyDeductions(kharchi []models.KharchiEntry, advances []models.AdvanceEntry, workerID, month string) (kharchiTotal, advanceTotal float64) {
	for _, k := range kharchi {
		if k.WorkerID == workerID && strings.HasPrefix(k.Date, month) {
			kharchiTotal += k.Amount
		}
	}
	for _, a := range advances {
		if a.WorkerID == workerID && strings.HasPrefix(a.Date, month) {
			advanceTotal += a.Amount
		}
	}
	return kharchiTotal, advanceTotal
}

// NetPayable is the payroll settlement rule. The result may be negative when
// deductions exceed the work amount; it is reported as-is.
func NetPayable(workAmount, messDeduction, kharchiDeduction, advanceDeduction float64) float64 {
	return workAmount - messDeduction - kharchiDeduction - advanceDeduction
}

// SundaysInMonth enumerates every Sunday of a "2006-01" month as ISO days.
// These are the only dates the kharchi register accepts.
func SundaysInMonth(month string) ([]string, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	var sundays []string
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			sundays = append(sundays, d.Format("2006-01-02"))
		}
	}
	return sundays, nil
}

// PresentCountByDate tallies Present marks per day for the attendance trend
// chart, optionally filtered to one project. Half days count as present.
func PresentCountByDate(records []models.AttendanceRecord, projectID string) map[string]int {
	counts := map[string]int{}
	for _, r := range records {
		if projectID != "" && projectID != "All" && r.ProjectID != projectID {
			continue
		}
		if r.Status == models.AttendancePresent || r.Status == models.AttendanceHalfDay {
			counts[r.Date]++
		}
	}
	return counts
}

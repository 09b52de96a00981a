package store

import (
	"testing"

	"github.com/itousif38-netizen/SN-ENTP/models"
)

func TestProjectHealth(t *testing.T) {
	tests := []struct {
		name     string
		project  models.Project
		expected string
	}{
		{"no budget", models.Project{Budget: 0, Spent: 100}, HealthStable},
		{"on plan", models.Project{Budget: 1000, Spent: 400, CompletionPercentage: 45}, HealthStable},
		{"spend ahead of progress", models.Project{Budget: 1000, Spent: 600, CompletionPercentage: 30}, HealthWarning},
		{"almost exhausted", models.Project{Budget: 1000, Spent: 950, CompletionPercentage: 98}, HealthCritical},
		{"critical beats warning", models.Project{Budget: 1000, Spent: 950, CompletionPercentage: 20}, HealthCritical},
		{"exactly ninety percent", models.Project{Budget: 1000, Spent: 900, CompletionPercentage: 85}, HealthStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectHealth(tt.project); got != tt.expected {
				t.Errorf("ProjectHealth(%+v) = %q, expected %q", tt.project, got, tt.expected)
			}
		})
	}
}

func TestGSTLiability(t *testing.T) {
	bills := []models.Bill{
		{ProjectID: "p1", GSTAmount: 1800},
		{ProjectID: "p1", GSTAmount: 900},
		{ProjectID: "p2", GSTAmount: 500},
	}

	if got := GSTLiability(bills, "p1"); got != 2700 {
		t.Errorf("GSTLiability(p1) = %v, expected 2700", got)
	}
	if got := GSTLiability(bills, "All"); got != 3200 {
		t.Errorf("GSTLiability(All) = %v, expected 3200", got)
	}
	if got := GSTLiability(bills, ""); got != 3200 {
		t.Errorf("GSTLiability(\"\") = %v, expected 3200", got)
	}
}

func TestInventoryBalances(t *testing.T) {
	purchases := []models.PurchaseEntry{
		{ProjectID: "p1", Description: "Cement", Unit: "bags", Quantity: 200},
		{ProjectID: "p1", Description: "  cement ", Unit: "bags", Quantity: 50},
		{ProjectID: "p1", Description: "Steel", Unit: "kg", Quantity: 1000},
		{ProjectID: "p2", Description: "Cement", Unit: "bags", Quantity: 999},
	}
	consumption := []models.StockConsumption{
		{ProjectID: "p1", MaterialName: "CEMENT", Unit: "bags", Quantity: 60},
		{ProjectID: "p1", MaterialName: "Steel", Unit: "ton", Quantity: 0.5},
	}

	balances := InventoryBalances(purchases, consumption, "p1")
	if len(balances) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(balances))
	}

	// Sorted by name, cement first.
	cement := balances[0]
	if cement.Material != "Cement" || cement.Balance != 190 {
		t.Errorf("cement balance = %+v, expected 190 under display name Cement", cement)
	}
	if cement.UnitMismatch {
		t.Error("cement units agree, mismatch flag should be clear")
	}

	steel := balances[1]
	if !steel.UnitMismatch {
		t.Error("kg purchase against ton consumption should flag a unit mismatch")
	}
	if steel.Unit != "kg" {
		t.Errorf("displayed unit should come from the first purchase, got %q", steel.Unit)
	}
}

func TestProfitAndLoss(t *testing.T) {
	c := Collections{
		Purchases:      []models.PurchaseEntry{{ProjectID: "p1", TotalAmount: 76000}},
		Kharchi:        []models.KharchiEntry{{ProjectID: "p1", Amount: 2000}},
		Advances:       []models.AdvanceEntry{{ProjectID: "p1", Amount: 5000}},
		WorkerPayments: []models.WorkerPayment{{ProjectID: "p1", NetPayable: 15000}},
		ClientPayments: []models.ClientPayment{
			{ProjectID: "p1", Amount: 700000},
			{ProjectID: "p2", Amount: 300000},
		},
	}

	income, expense := ProfitAndLoss(c, "p1")
	if income != 700000 {
		t.Errorf("income = %v, expected 700000", income)
	}
	if expense != 98000 {
		t.Errorf("expense = %v, expected 98000", expense)
	}

	income, _ = ProfitAndLoss(c, "All")
	if income != 1000000 {
		t.Errorf("All income = %v, expected 1000000", income)
	}
}

func TestMonthlyDeductionsAndNetPayable(t *testing.T) {
	kharchi := []models.KharchiEntry{
		{WorkerID: "w1", Date: "2024-03-03", Amount: 500},
		{WorkerID: "w1", Date: "2024-03-10", Amount: 500},
		{WorkerID: "w1", Date: "2024-04-07", Amount: 500},
		{WorkerID: "w2", Date: "2024-03-03", Amount: 700},
	}
	advances := []models.AdvanceEntry{
		{WorkerID: "w1", Date: "2024-03-15", Amount: 1000},
		{WorkerID: "w1", Date: "2024-02-28", Amount: 9999},
	}

	kharchiTotal, advanceTotal := MonthlyDeductions(kharchi, advances, "w1", "2024-03")
	if kharchiTotal != 1000 {
		t.Errorf("kharchi total = %v, expected 1000", kharchiTotal)
	}
	if advanceTotal != 1000 {
		t.Errorf("advance total = %v, expected 1000", advanceTotal)
	}

	net := NetPayable(10000, 500, kharchiTotal, advanceTotal)
	if net != 7500 {
		t.Errorf("net payable = %v, expected 7500", net)
	}

	// Deductions above the work amount go negative, never floored.
	if got := NetPayable(1000, 500, 1000, 1000); got != -1500 {
		t.Errorf("negative net payable = %v, expected -1500", got)
	}
}

func TestSundaysInMonth(t *testing.T) {
	sundays, err := SundaysInMonth("2024-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"2024-02-04", "2024-02-11", "2024-02-18", "2024-02-25"}
	if len(sundays) != len(expected) {
		t.Fatalf("expected %d sundays, got %d", len(expected), len(sundays))
	}
	for i, day := range expected {
		if sundays[i] != day {
			t.Errorf("sunday[%d] = %q, expected %q", i, sundays[i], day)
		}
	}

	if _, err := SundaysInMonth("February 2024"); err == nil {
		t.Error("expected an error for a malformed month")
	}
}

func TestPresentCountByDate(t *testing.T) {
	records := []models.AttendanceRecord{
		{ProjectID: "p1", WorkerID: "w1", Date: "2024-03-01", Status: models.AttendancePresent},
		{ProjectID: "p1", WorkerID: "w2", Date: "2024-03-01", Status: models.AttendanceHalfDay},
		{ProjectID: "p1", WorkerID: "w3", Date: "2024-03-01", Status: models.AttendanceAbsent},
		{ProjectID: "p2", WorkerID: "w4", Date: "2024-03-01", Status: models.AttendancePresent},
	}

	counts := PresentCountByDate(records, "p1")
	if counts["2024-03-01"] != 2 {
		t.Errorf("half days count as present: got %d, expected 2", counts["2024-03-01"])
	}

	all := PresentCountByDate(records, "All")
	if all["2024-03-01"] != 3 {
		t.Errorf("All filter should span projects: got %d, expected 3", all["2024-03-01"])
	}
}

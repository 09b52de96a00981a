package store

import "github.com/itousif38-netizen/SN-ENTP/models"

// Defaults is the demo dataset used as the load fallback for each collection.
// A fresh install (or a corrupt key) comes up with this data instead of an
// empty screen.
func Defaults() Collections {
	return Collections{
		Projects: []models.Project{
			{
				ID:                   "1700000000001",
				Name:                 "Riverside Heights",
				ProjectCode:          "RH",
				Address:              "Plot 14, Ring Road, Nagpur",
				Client:               "Shree Developers",
				StartDate:            "2024-01-15",
				CompletionDate:       "2025-06-30",
				Budget:               4500000,
				Spent:                2100000,
				Status:               models.StatusInProgress,
				CompletionPercentage: 45,
			},
			{
				ID:                   "1700000000002",
				Name:                 "Galaxy Tower",
				Address:              "Sector 9, MIDC, Nagpur",
				Client:               "Galaxy Infra",
				StartDate:            "2024-05-01",
				Budget:               7800000,
				Spent:                950000,
				Status:               models.StatusPlanning,
				CompletionPercentage: 10,
			},
		},
		Workers: []models.Worker{
			{
				ID:          "1700000001001",
				WorkerID:    "SNE/RH-001",
				Name:        "Ramesh Yadav",
				ProjectID:   "1700000000001",
				Designation: "Mason",
				SerialNo:    1,
				JoiningDate: "2024-01-20",
			},
			{
				ID:          "1700000001002",
				WorkerID:    "SNE/RH-002",
				Name:        "Suresh Kumar",
				ProjectID:   "1700000000001",
				Designation: "Helper",
				SerialNo:    2,
				JoiningDate: "2024-02-01",
			},
		},
		Bills: []models.Bill{
			{
				ID:           "1700000002001",
				ProjectID:    "1700000000001",
				BillNo:       "RA-01",
				WorkNature:   "Footing and plinth work",
				Amount:       850000,
				BillingMonth: "2024-03",
				GSTAmount:    153000,
				GrandTotal:   1003000,
				CertifyDate:  "2024-04-10",
			},
		},
		ClientPayments: []models.ClientPayment{
			{
				ID:        "1700000003001",
				ProjectID: "1700000000001",
				Date:      "2024-04-18",
				Amount:    700000,
				Remarks:   "RA-01 part payment",
			},
		},
		Kharchi:  []models.KharchiEntry{},
		Advances: []models.AdvanceEntry{},
		Purchases: []models.PurchaseEntry{
			{
				ID:          "1700000004001",
				SerialNo:    1,
				ProjectID:   "1700000000001",
				Date:        "2024-02-12",
				Description: "Cement",
				Quantity:    200,
				Unit:        "bags",
				Rate:        380,
				TotalAmount: 76000,
			},
		},
		Execution: []models.ExecutionLevel{
			{
				ID:        "1700000005001",
				ProjectID: "1700000000001",
				LevelName: "Level 1",
				Pours:     []string{},
			},
		},
		MessEntries:    []models.MessEntry{},
		WorkerPayments: []models.WorkerPayment{},
		Attendance:     []models.AttendanceRecord{},
		Consumption: []models.StockConsumption{
			{
				ID:           "1700000006001",
				ProjectID:    "1700000000001",
				MaterialName: "Cement",
				Quantity:     60,
				Unit:         "bags",
				Activity:     "Footing concrete",
				Date:         "2024-02-20",
			},
		},
	}
}

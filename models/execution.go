package models

// ExecutionLevel is a named construction stage (floor/level) tracked for
// schedule purposes, with its concrete pours.
type ExecutionLevel struct {
	ID        string   `json:"id"`
	ProjectID string   `json:"projectId"`
	LevelName string   `json:"levelName"`
	Pours     []string `json:"pours"`
}

// MessEntry is one canteen billing cycle for a project.
// TotalAmount is always WorkerCount x Rate.
type MessEntry struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	WorkerCount int     `json:"workerCount"`
	Rate        float64 `json:"rate"`
	TotalAmount float64 `json:"totalAmount"`
	AmountPaid  float64 `json:"amountPaid"`
	Balance     float64 `json:"balance"`
}

package models

// Project statuses as shown on the project board.
const (
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusOnHold     = "On Hold"
	StatusCompleted  = "Completed"
)

// Project represents a construction site under contract.
type Project struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	ProjectCode          string  `json:"projectCode,omitempty"`
	Address              string  `json:"address"`
	Client               string  `json:"client,omitempty"`
	StartDate            string  `json:"startDate"`
	CompletionDate       string  `json:"completionDate,omitempty"`
	Budget               float64 `json:"budget"`
	Spent                float64 `json:"spent,omitempty"`
	Status               string  `json:"status"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

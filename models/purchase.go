package models

// PurchaseEntry is a material purchase booked against a project.
// TotalAmount is always Quantity x Rate; it is derived at save time and
// never edited independently.
type PurchaseEntry struct {
	ID          string  `json:"id"`
	SerialNo    int     `json:"serialNo"`
	ProjectID   string  `json:"projectId"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	TotalAmount float64 `json:"totalAmount"`
}

// StockConsumption records material drawn from site stock for an activity.
// It is matched to purchases by case-insensitive, trimmed material name.
type StockConsumption struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"projectId"`
	MaterialName string  `json:"materialName"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Activity     string  `json:"activity"`
	Date         string  `json:"date"`
}

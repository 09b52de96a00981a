package models

// Bill is a running-account bill raised against the client for a project.
// GSTAmount is the tax line; GrandTotal = Amount + GSTAmount when certified.
type Bill struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"projectId"`
	BillNo       string  `json:"billNo"`
	WorkNature   string  `json:"workNature"`
	Amount       float64 `json:"amount"`
	BillingMonth string  `json:"billingMonth"`
	GSTAmount    float64 `json:"gstAmount,omitempty"`
	GrandTotal   float64 `json:"grandTotal,omitempty"`
	CertifyDate  string  `json:"certifyDate,omitempty"`
}

// ClientPayment is money received from the client against a project.
type ClientPayment struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Remarks   string  `json:"remarks"`
}

package models

// KharchiEntry is weekly petty cash handed to a worker. By site convention
// kharchi is only paid on Sundays, so Date is always a Sunday. One entry
// exists per (WorkerID, Date); the ID is derived as "<workerId>-<date>".
type KharchiEntry struct {
	ID        string  `json:"id"`
	WorkerID  string  `json:"workerId"`
	ProjectID string  `json:"projectId"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
}

// KharchiID builds the composite worker-day key used as the entry ID.
func KharchiID(workerID, date string) string {
	return workerID + "-" + date
}

// AdvanceEntry is a formal cash advance to a worker, distinct from kharchi.
type AdvanceEntry struct {
	ID          string  `json:"id"`
	SerialNo    int     `json:"serialNo"`
	WorkerID    string  `json:"workerId"`
	ProjectID   string  `json:"projectId"`
	Amount      float64 `json:"amount"`
	PaidBy      string  `json:"paidBy"`
	Remarks     string  `json:"remarks"`
	Date        string  `json:"date"`
	PaymentMode string  `json:"paymentMode"`
}

// WorkerPayment is one settled payroll row for a worker-month.
// NetPayable = WorkAmount - MessDeduction - KharchiDeduction - AdvanceDeduction
// and may go negative; it is never floored. One record exists per
// (WorkerID, Month); the ID is derived as "<workerId>-<month>".
type WorkerPayment struct {
	ID               string  `json:"id"`
	SerialNo         int     `json:"serialNo"`
	WorkerID         string  `json:"workerId"`
	ProjectID        string  `json:"projectId"`
	Month            string  `json:"month"`
	WorkAmount       float64 `json:"workAmount"`
	MessDeduction    float64 `json:"messDeduction"`
	KharchiDeduction float64 `json:"kharchiDeduction"`
	AdvanceDeduction float64 `json:"advanceDeduction"`
	NetPayable       float64 `json:"netPayable"`
	IsPaid           bool    `json:"isPaid"`
	Date             string  `json:"date"`
}

// PaymentID builds the composite worker-month key used as the record ID.
func PaymentID(workerID, month string) string {
	return workerID + "-" + month
}

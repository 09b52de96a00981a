package models

// Attendance statuses.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHalfDay = "Half Day"
)

// Worker represents a labourer on a project's muster roll. WorkerID is the
// human-readable business code (e.g. "SNE/RH-001"); ID is the internal key.
type Worker struct {
	ID          string `json:"id"`
	WorkerID    string `json:"workerId"`
	Name        string `json:"name"`
	ProjectID   string `json:"projectId"`
	Designation string `json:"designation"`
	SerialNo    int    `json:"serialNo"`
	JoiningDate string `json:"joiningDate"`
	ExitDate    string `json:"exitDate,omitempty"`
}

// AttendanceRecord is one worker-day mark. Date is an ISO day ("2006-01-02");
// at most one record exists per (WorkerID, Date).
type AttendanceRecord struct {
	ID        string `json:"id"`
	WorkerID  string `json:"workerId"`
	ProjectID string `json:"projectId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

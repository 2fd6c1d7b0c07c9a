package attendance

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=PRESENT ABSENT"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PRESENT ABSENT"`
}

type EmployeeSummary struct {
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}

type AttendanceResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Date       string           `json:"date"`
	Status     string           `json:"status"`
	Employee   *EmployeeSummary `json:"employee,omitempty"`
}

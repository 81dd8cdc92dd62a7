package employee

import "time"

type Employee struct {
	ID             string
	UserID         string
	OrganizationID string
	EmployeeCode   string
	Department     string
	Designation    string
	DateOfJoining  time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

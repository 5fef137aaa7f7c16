package models

import "time"

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

type Employee struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Role    string        `json:"role"`
	Phone   string        `json:"phone"`
	Email   string        `json:"email"`
	Shift   string        `json:"shift"`
	Rating  float64       `json:"rating"`
	Reviews []StaffReview `json:"reviews"`
	Status  string        `json:"status"`
}

// StaffReview is a guest review of an employee, kept on the employee record.
type StaffReview struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// internal/domain/models/student.go
package models

// Student is derived server-side from the tasks a student has reported.
// The dashboard never modifies students.
type Student struct {
	RegisterNumber string `json:"registerNumber"`
	Name           string `json:"name"`
	TotalReports   int    `json:"totalReports"`
	LastActive     string `json:"lastActive"`
}

package models

import "time"

// Employee is a row of the employees table. Optional columns are nullable.
type Employee struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Position   *string   `json:"position"`
	Department *string   `json:"department"`
	Phone      *string   `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
